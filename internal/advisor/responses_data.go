package advisor

// Response pools referenced by the default catalog. Pure content, safe
// to edit without touching any matching logic.

var genericFallbackPool = []string{
	"🌟 **Cảm ơn bạn đã chia sẻ!**\n\nHãy kể thêm về sở thích, điểm mạnh hoặc băn khoăn của bạn " +
		"để mình tư vấn ngành học phù hợp nhất nhé! 😊",
	"🤗 **Mình luôn sẵn sàng lắng nghe!**\n\nBạn có thể hỏi về các ngành học, điều kiện tuyển sinh, " +
		"học phí, cơ hội việc làm hoặc bất cứ băn khoăn nào về định hướng nghề nghiệp.",
	"💬 **Đừng ngại đặt câu hỏi!**\n\nVí dụ: \"Em học dốt toán có học được IT không?\", " +
		"\"Ngành thiết kế đồ họa học những gì?\", \"So sánh IT và Marketing giúp em\"... " +
		"Mình sẽ tư vấn chi tiết! 🎯",
}

var mathItResponses = []string{
	"🤔 **Học dốt toán có thể học IT không?**\n\n✅ **Tin tốt:** HOÀN TOÀN ĐƯỢC! " +
		"Nhiều lập trình viên giỏi không xuất thân từ toán học.\n\n" +
		"📊 **Thực tế về toán trong IT:**\n• 70% công việc IT chỉ cần toán cơ bản\n" +
		"• Logic tư duy quan trọng hơn tính toán phức tạp\n• Có công cụ và thư viện hỗ trợ mọi phép tính\n\n" +
		"🎯 **Các lĩnh vực IT ít cần toán:**\n• Frontend Development\n• Mobile App Development\n" +
		"• UI/UX Design\n• Software Testing\n\n" +
		"🚀 Bạn có muốn mình tư vấn lộ trình học IT cho người mới bắt đầu không?",
	"💻 **Toán kém vẫn có thể thành công trong IT!**\n\n" +
		"🌟 Nhiều CEO công nghệ nổi tiếng như Jack Dorsey (Twitter) không giỏi toán nhưng vẫn thành công!\n\n" +
		"🧠 **Kỹ năng quan trọng hơn toán:**\n• Tư duy logic và giải quyết vấn đề\n" +
		"• Khả năng học hỏi và thích nghi\n• Kiên nhẫn và tỉ mỉ trong code\n• Giao tiếp và làm việc nhóm\n\n" +
		"💪 **Bí quyết thành công:**\n• Bắt đầu với HTML/CSS đơn giản\n• Học JavaScript từ từ\n" +
		"• Tham gia cộng đồng lập trình viên\n• Làm project thực tế thay vì học thuần lý thuyết",
	"🚀 **Toán dở không phải rào cản với IT!**\n\n" +
		"📈 **Thống kê thú vị:**\n• 60% lập trình viên tự học, không có nền tảng toán mạnh\n" +
		"• Các framework hiện đại đã giải quyết phần toán phức tạp\n\n" +
		"🎯 **Lộ trình gợi ý:**\n**Tháng 1-2:** HTML + CSS cơ bản\n**Tháng 3-4:** JavaScript căn bản\n" +
		"**Tháng 5-6:** Framework đầu tiên (React hoặc Vue.js)\n\n" +
		"💡 **Mẹo học hiệu quả:** code mỗi ngày, dù chỉ 30 phút!",
}

var drawingDesignResponses = []string{
	"🎨 **Không biết vẽ? Thiết kế hiện đại khác hoàn toàn!**\n\n" +
		"✅ **Thực tế:**\n• 80% designer làm việc trên máy tính\n• AI tools hỗ trợ tạo ý tưởng\n" +
		"• Template và asset library phong phú\n\n" +
		"🛠️ **Kỹ năng quan trọng hơn:**\n• Cảm thẩm mỹ (có thể rèn luyện)\n• Hiểu xu hướng màu sắc\n" +
		"• Tư duy user experience\n• Kỹ năng sử dụng Photoshop/Figma\n\n" +
		"💡 **Bắt đầu:** Học Canva → Photoshop → Illustrator",
}

var subjectWeakMathResponses = []string{
	"🤔 **Dốt toán vẫn có thể thành công!**\n\n✅ **Thực tế:** 70% công việc hiện đại chỉ cần toán cơ bản\n" +
		"• Logic tư duy quan trọng hơn tính toán\n• Có công cụ hỗ trợ mọi phép tính\n\n" +
		"🎯 **Ngành phù hợp:**\n• Frontend Development\n• UI/UX Design\n• Content Marketing\n" +
		"• Social Media Management\n\n💡 Tập trung phát triển tư duy logic thay vì lo lắng về toán!",
	"💻 **Toán kém không cản trở sự nghiệp!**\n\n🌟 **Ví dụ thành công:**\n" +
		"• Jack Dorsey (Twitter): không xuất thân toán học\n• Jan Koum (WhatsApp): tự học lập trình\n\n" +
		"🧠 **Kỹ năng thay thế:**\n• Sáng tạo và giải quyết vấn đề\n• Giao tiếp và teamwork\n" +
		"• Kiên trì học hỏi\n\n🚀 Bắt đầu với HTML/CSS rồi học JavaScript từ cơ bản!",
}

var subjectWeakLiteratureResponses = []string{
	"📝 **Văn kém vẫn có cơ hội tốt!**\n\n✅ **Ngành không cần văn giỏi:**\n• Công nghệ thông tin\n" +
		"• Thiết kế đồ họa\n• Kỹ thuật & Công nghệ\n• Data Analysis\n\n" +
		"🎯 **Tuy nhiên nên cải thiện:**\n• Kỹ năng viết email chuyên nghiệp\n• Kỹ năng thuyết trình\n\n" +
		"💡 Focus vào kỹ năng chuyên môn, văn có thể học dần!",
}

var subjectWeakEnglishResponses = []string{
	"🌍 **Tiếng Anh yếu? Vẫn có nhiều cơ hội!**\n\n✅ **Ngành ít cần tiếng Anh:**\n" +
		"• Thiết kế đồ họa (chủ yếu visual)\n• Marketing nội địa\n• Kỹ thuật\n\n" +
		"📈 **Tuy nhiên nên cải thiện:**\n• Lương cao hơn 30-50% khi giỏi Anh\n" +
		"• Cơ hội remote work quốc tế\n\n💡 Học mỗi ngày 15 phút với app miễn phí!",
}

var subjectWeakDefaultResponses = []string{
	"📚 **Yếu một môn không quyết định tương lai!**\n\n✅ Điểm số chỉ là một phần, " +
		"quan trọng là bạn tìm được ngành phù hợp với thế mạnh của mình.\n\n" +
		"🎯 Hãy kể thêm về sở thích và điểm mạnh của bạn để mình gợi ý ngành học phù hợp nhé!",
}

var financialResponses = []string{
	"💰 **Đừng để tài chính cản trở ước mơ!**\n\n🎓 **Học bổng:**\n• 100% học phí: học sinh xuất sắc\n" +
		"• 50-75% học phí: hoàn cảnh khó khăn\n• 25-50% học phí: thành tích tốt\n\n" +
		"💳 **Hỗ trợ tài chính:**\n• Trả góp 0% lãi suất\n• Vay vốn ưu đãi\n• Part-time jobs tại trường\n" +
		"• Thực tập có lương từ năm 2",
}

var admissionResponses = []string{
	"📋 **Điều kiện tuyển sinh rất đơn giản!**\n\n✅ **Yêu cầu:**\n• Tốt nghiệp THPT hoặc tương đương\n" +
		"• Xét tuyển bằng học bạ, không thi đầu vào\n\n" +
		"📅 **Hồ sơ:**\n• Bản sao bằng tốt nghiệp hoặc giấy chứng nhận tạm thời\n• Học bạ THPT\n" +
		"• CMND/CCCD\n\n💡 Đăng ký online và nhận tư vấn miễn phí!",
}

var scholarshipResponses = []string{
	"🎓 **Nhiều chương trình học bổng hấp dẫn!**\n\n• Học bổng 100% cho thủ khoa đầu vào\n" +
		"• Học bổng 50-70% cho học sinh giỏi\n• Miễn giảm học phí cho hoàn cảnh khó khăn\n" +
		"• Học bổng tài năng (văn nghệ, thể thao, tin học)\n\n" +
		"💡 Nộp hồ sơ sớm để tăng cơ hội nhận học bổng!",
}

var learningDifficultyResponses = []string{
	"🤔 **Khó hay dễ phụ thuộc vào sự phù hợp!**\n\n✅ **Chương trình học thực hành 70%:**\n" +
		"• Học qua dự án thực tế\n• Giảng viên hỗ trợ sát sao\n• Lab mở cửa tự do\n\n" +
		"💪 Chỉ cần chăm chỉ và đúng phương pháp, bạn hoàn toàn theo kịp!",
}

var itCareerResponses = []string{
	"🖥️ **Ngành Công nghệ thông tin - Lựa chọn hàng đầu!**\n\n" +
		"📚 **Chuyên ngành:**\n• Phát triển phần mềm\n• Lập trình Web/Mobile\n• Ứng dụng phần mềm\n\n" +
		"💼 **Cơ hội việc làm:**\n• 98% sinh viên có việc sau 6 tháng\n• Lương khởi điểm 8-15 triệu\n" +
		"• Lộ trình thăng tiến rõ ràng\n\n🎯 Thời gian học: 2-2.5 năm, thực hành 70%!",
}

var designCareerResponses = []string{
	"🎨 **Ngành Thiết kế đồ họa - Sáng tạo dẫn lối!**\n\n" +
		"📚 **Học gì:**\n• Nguyên lý thiết kế và màu sắc\n• Photoshop, Illustrator, Figma\n" +
		"• UI/UX, Motion Graphics\n\n" +
		"💼 **Ra trường làm:**\n• Graphic Designer\n• UI/UX Designer\n• Art Director tương lai\n\n" +
		"🌟 Ngành hot với mức lương hấp dẫn và môi trường trẻ trung!",
}

var businessCareerResponses = []string{
	"📈 **Marketing & Kinh doanh - Ngành của người năng động!**\n\n" +
		"📚 **Học gì:**\n• Digital Marketing\n• Nghiên cứu thị trường\n• Xây dựng thương hiệu\n• Sales & CSKH\n\n" +
		"💼 **Cơ hội:**\n• Mọi doanh nghiệp đều cần Marketing\n• Thu nhập không giới hạn theo năng lực\n" +
		"• Dễ khởi nghiệp riêng\n\n🚀 Phù hợp với bạn trẻ giao tiếp tốt, thích sáng tạo!",
}

var salaryResponses = []string{
	"💰 **Mức lương tham khảo theo ngành (2024):**\n\n**🖥️ Công nghệ thông tin:**\n" +
		"• Fresher: 8-15 triệu\n• Junior (1-2 năm): 15-25 triệu\n• Senior (3-5 năm): 25-45 triệu\n\n" +
		"**🎨 Thiết kế đồ họa:**\n• Fresher: 6-12 triệu\n• Junior: 12-20 triệu\n• Senior: 20-35 triệu\n\n" +
		"**📈 Marketing:**\n• Fresher: 7-13 triệu\n• Executive: 13-22 triệu\n• Manager: 22-40 triệu",
}

var comparisonResponses = []string{
	"⚖️ **So sánh nhanh các ngành hot:**\n\n**IT:** logic, kiên nhẫn, lương cao, nhu cầu lớn.\n" +
		"**Thiết kế:** sáng tạo, thẩm mỹ, môi trường trẻ trung.\n" +
		"**Marketing:** giao tiếp, năng động, cơ hội rộng mở.\n\n" +
		"💡 Hãy cho mình biết điểm mạnh của bạn để tư vấn ngành phù hợp nhất!",
}

var skillProgrammingResponses = []string{
	"💻 **Chưa biết lập trình? Không sao cả!**\n\n🌟 95% sinh viên IT bắt đầu từ con số 0\n\n" +
		"🎯 **Lộ trình cho người mới:**\n1. HTML/CSS (2-3 tuần)\n2. JavaScript cơ bản (1-2 tháng)\n" +
		"3. Framework (React/Vue) (2-3 tháng)\n4. Backend basics (Node.js/Python)\n\n" +
		"💡 **Tài nguyên học free:** Codecademy, freeCodeCamp, YouTube\n\n🚀 Làm project nhỏ mỗi tuần!",
}

var skillDrawingResponses = drawingDesignResponses

var skillEnglishResponses = subjectWeakEnglishResponses

var skillDefaultResponses = []string{
	"🌱 **Ai cũng bắt đầu từ con số 0!**\n\nChương trình học được thiết kế cho người mới, " +
		"đi từ nền tảng đến nâng cao với 70% thời lượng thực hành.\n\n" +
		"💪 Quan trọng là sự kiên trì, không phải xuất phát điểm!",
}

var shouldIResponses = []string{
	"🤔 **Nên hay không phụ thuộc vào chính bạn!**\n\n✅ **Hãy tự hỏi:**\n• Mình thích làm gì hàng ngày?\n" +
		"• Mình giỏi kỹ năng nào?\n• Ngành đó có tương lai không?\n\n" +
		"💡 Kể cho mình nghe sở thích của bạn, mình sẽ phân tích chi tiết từng lựa chọn!",
}

var futureResponses = []string{
	"🔮 **Xu hướng nghề nghiệp 5 năm tới:**\n\n📈 **Tăng trưởng mạnh:**\n• Công nghệ thông tin & AI\n" +
		"• Digital Marketing\n• Thiết kế trải nghiệm người dùng\n• Logistics & Thương mại điện tử\n\n" +
		"💡 Chọn ngành vừa hợp xu hướng vừa hợp thế mạnh bản thân là tối ưu nhất!",
}

var greetingResponses = []string{
	"👋 **Xin chào! Mình là trợ lý tư vấn hướng nghiệp.**\n\nMình có thể giúp bạn:\n" +
		"• Tìm ngành học phù hợp\n• Thông tin tuyển sinh và học phí\n• Cơ hội việc làm từng ngành\n\n" +
		"Bạn đang quan tâm điều gì? 😊",
	"🌟 **Chào bạn! Rất vui được hỗ trợ bạn.**\n\nHãy hỏi mình bất cứ điều gì về định hướng " +
		"nghề nghiệp, các ngành học hoặc tuyển sinh nhé!",
}

var encouragementResponses = []string{
	"🤗 **Đừng quá lo lắng bạn nhé!**\n\nViệc băn khoăn về tương lai là hoàn toàn bình thường. " +
		"Mỗi người có một lộ trình riêng, quan trọng là bắt đầu.\n\n" +
		"💪 Hãy chia sẻ điều bạn đang lo lắng, mình sẽ cùng bạn tháo gỡ từng bước!",
}
