package advisor

// Tag families and tags used by profile extraction. Content only; the
// mechanism lives in profile.go.

type tagFamily int

const (
	tagFamilyConcern tagFamily = iota
	tagFamilyInterest
	tagFamilyPersonality
	tagFamilyDemographic
)

const (
	tagAcademicWeakness = "academic_weakness"
	tagFinancial        = "financial"
	tagAge              = "age"
	tagTechnology       = "technology"
	tagDesign           = "design"
	tagBusiness         = "business"
	tagCreative         = "creative"
	tagAnalytical       = "analytical"
	tagSocial           = "social"
	tagFemale           = "female"
)

type profileTagRule struct {
	Family   tagFamily
	Tag      string
	Keywords []string
}

var profileTagRules = []profileTagRule{
	{tagFamilyConcern, tagAcademicWeakness, []string{"dốt", "kém", "yếu", "không giỏi"}},
	{tagFamilyConcern, tagFinancial, []string{"nghèo", "không có tiền", "kinh tế khó khăn", "học phí"}},
	{tagFamilyConcern, tagAge, []string{"tuổi", "già", "trẻ", "muộn"}},
	{tagFamilyDemographic, tagFemale, []string{"con gái", "nữ", "girl", "female"}},
	{tagFamilyInterest, tagTechnology, []string{"công nghệ", "máy tính", "lập trình", "it"}},
	{tagFamilyInterest, tagDesign, []string{"thiết kế", "đồ họa", "vẽ", "design"}},
	{tagFamilyInterest, tagBusiness, []string{"kinh doanh", "marketing", "bán hàng", "quản lý"}},
	{tagFamilyPersonality, tagCreative, []string{"thích sáng tạo", "sáng tạo", "nghệ thuật"}},
	{tagFamilyPersonality, tagAnalytical, []string{"thích tính toán", "logic", "phân tích"}},
	{tagFamilyPersonality, tagSocial, []string{"thích giao tiếp", "nói chuyện", "social"}},
}

// profileAdvice holds one composed reply per synthesis rule.
var profileAdvice = struct {
	AcademicSupportIT     string
	AcademicSupportDesign string
	FinancialSupport      string
	AgeAdvice             string
	WomenInTech           string
	TechCareer            string
	DesignCareer          string
	BusinessCareer        string
	CreativeCareer        string
	AnalyticalCareer      string
	SocialCareer          string
	GeneralEncouragement  string
}{
	AcademicSupportIT: "💪 **Đừng lo về học lực! Thành công trong IT không chỉ phụ thuộc vào điểm số!**\n\n" +
		"🌟 **Những điều quan trọng hơn điểm số:**\n• Đam mê và kiên trì học hỏi\n• Khả năng tự học và tìm hiểu\n" +
		"• Tư duy giải quyết vấn đề\n• Thực hành và làm project\n\n" +
		"🚀 **Lộ trình phù hợp cho bạn:**\n• Bắt đầu với HTML/CSS cơ bản\n• Tập trung vào thực hành nhiều hơn lý thuyết\n" +
		"• Tham gia cộng đồng học lập trình\n• Xây dựng portfolio từ project nhỏ\n\n" +
		"💡 Nhiều lập trình viên thành công không xuất thân từ học sinh giỏi!",
	AcademicSupportDesign: "🎨 **Thiết kế không cần điểm số cao, cần CẢM HỨNG và SÁNG TẠO!**\n\n" +
		"✨ **Những điều quan trọng trong Design:**\n• Cảm thẩm mỹ và óc sáng tạo\n• Khả năng quan sát và học hỏi\n" +
		"• Kiên nhẫn và tỉ mỉ\n• Hiểu tâm lý người dùng\n\n" +
		"🎯 **Bắt đầu ngay từ hôm nay:**\n• Tải Canva hoặc Figma miễn phí\n• Thực hành thiết kế poster, banner\n" +
		"• Theo dõi các designer nổi tiếng\n• Tham gia các contest design",
	FinancialSupport: "💰 **Đừng để tài chính cản trở ước mơ của bạn!**\n\n" +
		"🎓 **Học bổng:**\n• 100% học phí cho học sinh xuất sắc\n• 50% học phí cho hoàn cảnh khó khăn\n" +
		"• Học bổng tài năng đặc biệt\n\n" +
		"💳 **Hỗ trợ tài chính:**\n• Trả góp 0% lãi suất\n• Vay vốn ưu đãi từ ngân hàng\n• Part-time job tại trường\n\n" +
		"🚀 Thực tập có lương từ năm 2 giúp bạn tự trang trải chi phí!",
	AgeAdvice: "🎯 **Học không bao giờ là quá muộn, cũng không bao giờ là quá sớm!**\n\n" +
		"✅ **Người trẻ:** học nhanh, thích nghi tốt, nhiều thời gian phát triển.\n" +
		"✅ **Người lớn tuổi:** kinh nghiệm sống, mục tiêu rõ ràng, kỷ luật cao.\n\n" +
		"🌟 Nhiều người thành công chuyển hướng nghề nghiệp sau 25, 30 tuổi!",
	WomenInTech: "👩‍💻 **Nữ giới trong Tech - Xu hướng tích cực!**\n\n" +
		"📈 **Thống kê khích lệ:**\n• 40% sinh viên IT là nữ\n• Nữ developer có mức lương cạnh tranh\n" +
		"• Nhiều nữ CEO công nghệ thành công\n\n" +
		"🌟 **Ưu điểm:**\n• Tỉ mỉ và cẩn thận\n• Giao tiếp và teamwork tốt\n• UI/UX design xuất sắc\n\n" +
		"💪 Role models: Sheryl Sandberg (Meta), Susan Wojcicki (YouTube)",
	TechCareer: "💻 **Công nghệ thông tin - Lựa chọn của thời đại!**\n\n" +
		"🚀 **Cơ hội nghề nghiệp:**\n• Web/Mobile Developer\n• Data Analyst\n• Tester/QA\n• DevOps Engineer\n\n" +
		"📈 Nhu cầu nhân lực IT luôn vượt nguồn cung, khởi điểm 8-15 triệu/tháng.\n\n" +
		"💡 Bắt đầu với HTML/CSS và JavaScript, làm project nhỏ mỗi tuần!",
	DesignCareer: "🎨 **Thiết kế đồ họa - Sáng tạo không giới hạn!**\n\n" +
		"✨ **Cơ hội nghề nghiệp:**\n• UI/UX Designer\n• Brand Designer\n• Motion Graphics\n• Creative Director\n\n" +
		"🛠️ Công cụ: Photoshop, Illustrator, Figma.\n\n" +
		"💡 Xây dựng portfolio từ các dự án nhỏ ngay hôm nay!",
	BusinessCareer: "📈 **Kinh doanh & Marketing - Sân chơi của người năng động!**\n\n" +
		"🚀 **Cơ hội nghề nghiệp:**\n• Digital Marketing\n• Sales Executive\n• Brand Manager\n• Khởi nghiệp riêng\n\n" +
		"🌟 Kỹ năng giao tiếp và tư duy chiến lược là lợi thế lớn của bạn!",
	CreativeCareer: "🌈 **Óc sáng tạo là tài sản quý giá!**\n\n" +
		"🎯 **Ngành phù hợp:**\n• Thiết kế đồ họa\n• Truyền thông đa phương tiện\n• Content Creator\n• Quảng cáo\n\n" +
		"💡 Hãy biến sự sáng tạo thành sản phẩm thực tế để khám phá thế mạnh của mình!",
	AnalyticalCareer: "🧠 **Tư duy phân tích mở ra nhiều cánh cửa!**\n\n" +
		"🎯 **Ngành phù hợp:**\n• Công nghệ thông tin\n• Data Analysis\n• Kế toán - Tài chính\n• Logistics\n\n" +
		"💡 Logic tốt là nền tảng vững chắc cho lập trình và phân tích dữ liệu!",
	SocialCareer: "🤝 **Kỹ năng giao tiếp là chìa khóa thành công!**\n\n" +
		"🎯 **Ngành phù hợp:**\n• Marketing\n• Quan hệ công chúng\n• Du lịch - Khách sạn\n• Tư vấn khách hàng\n\n" +
		"🌟 Người kết nối giỏi luôn được săn đón ở mọi doanh nghiệp!",
	GeneralEncouragement: "🌟 **Mỗi người đều có thế mạnh riêng!**\n\n" +
		"Hãy chia sẻ thêm về sở thích, điểm mạnh hoặc băn khoăn của bạn " +
		"để mình tư vấn ngành học phù hợp nhất nhé! 😊",
}
