package advisor

// DefaultCatalog returns the built-in rule table. Content only; every
// matching mechanism lives in the engine files. Category order fixes
// the declaration-order tie-break, priorities descend from urgent
// personal concerns to generic encouragement.
func DefaultCatalog() *Catalog {
	return &Catalog{
		ContextWords: []string{
			"học", "ngành", "nghề", "tương lai", "định hướng",
			"tư vấn", "có thể", "được không", "làm sao",
		},
		GenericPool: genericFallbackPool,
		Categories: []Category{
			{
				ID:       "specific_concerns",
				Priority: 1.2,
				Groups: []PatternGroup{
					{
						Name: "math_it",
						Patterns: []string{
							"dốt toán công nghệ thông tin",
							"dốt toán muốn học công nghệ thông tin",
							"kém toán học it",
							"dốt toán học lập trình",
						},
						Keywords: []string{
							"dốt toán", "học dốt toán", "kém toán", "yếu toán",
							"không giỏi toán", "toán dở", "công nghệ thông tin", "lập trình",
						},
						Responses: mathItResponses,
					},
					{
						Name: "drawing_design",
						Patterns: []string{
							"không biết vẽ thiết kế đồ họa",
							"chưa biết vẽ học thiết kế",
						},
						Keywords: []string{
							"không biết vẽ", "không giỏi vẽ", "vẽ dở", "chưa biết vẽ",
							"thiết kế", "đồ họa", "design",
						},
						Responses: drawingDesignResponses,
					},
					{
						Name: "subject_weakness",
						Slot: &Slot{
							Name:   "subject",
							Values: []string{"toán", "văn", "anh", "lý", "hóa", "sinh", "sử", "địa"},
						},
						Patterns: []string{
							"dốt {subject}", "kém {subject}", "yếu {subject}",
							"không giỏi {subject}", "{subject} dở", "học dốt {subject}",
							"yếu về {subject}", "chưa giỏi {subject}",
						},
						SlotResponses: map[string][]string{
							"toán": subjectWeakMathResponses,
							"văn":  subjectWeakLiteratureResponses,
							"anh":  subjectWeakEnglishResponses,
						},
						Responses: subjectWeakDefaultResponses,
					},
					{
						Name: "financial_hardship",
						Keywords: []string{
							"gia đình nghèo", "không có tiền", "kinh tế khó khăn",
							"học phí cao", "không đủ tiền", "nghèo",
						},
						Responses: financialResponses,
					},
				},
			},
			{
				ID:       "academic_support",
				Priority: 1.15,
				Groups: []PatternGroup{
					{
						Name:     "admission",
						Patterns: []string{"điều kiện tuyển sinh như thế nào"},
						Keywords: []string{
							"điều kiện tuyển sinh", "tuyển sinh", "đăng ký",
							"xét tuyển", "hồ sơ",
						},
						Responses: admissionResponses,
					},
					{
						Name: "scholarship",
						Keywords: []string{
							"học bổng", "hỗ trợ tài chính", "miễn giảm", "học phí",
						},
						Responses: scholarshipResponses,
					},
					{
						Name: "learning_difficulty",
						Keywords: []string{
							"có khó không", "khó học không", "dễ hay khó",
							"học có nặng không", "theo kịp không", "áp lực",
						},
						Responses: learningDifficultyResponses,
					},
				},
			},
			{
				ID:       "career_guidance",
				Priority: 1.1,
				Groups: []PatternGroup{
					{
						Name: "it_career",
						Keywords: []string{
							"công nghệ thông tin", "lập trình", "phần mềm",
							"developer", "coder",
						},
						Responses: itCareerResponses,
					},
					{
						Name: "design_career",
						Keywords: []string{
							"thiết kế đồ họa", "thiết kế", "đồ họa", "design",
							"graphic", "ui/ux", "designer",
						},
						Responses: designCareerResponses,
					},
					{
						Name: "business_career",
						Keywords: []string{
							"marketing", "quản trị kinh doanh", "kinh doanh",
							"business", "bán hàng", "sales",
						},
						Responses: businessCareerResponses,
					},
					{
						Name: "salary",
						Keywords: []string{
							"lương", "thu nhập", "mức lương", "kiếm được bao nhiêu",
						},
						Responses: salaryResponses,
					},
				},
			},
			{
				ID:       "major_information",
				Priority: 1.05,
				Groups: []PatternGroup{
					{
						Name: "comparison",
						Keywords: []string{
							"so sánh", "khác nhau", "giống nhau", "lựa chọn",
							"nên chọn", "ngành nào",
						},
						Responses: comparisonResponses,
					},
					{
						Name: "skill_concern",
						Slot: &Slot{
							Name:   "skill",
							Values: []string{"lập trình", "vẽ", "tiếng anh", "máy tính"},
						},
						Patterns: []string{
							"không biết {skill}", "chưa biết {skill}",
							"không giỏi {skill}", "không có kinh nghiệm {skill}",
							"mới bắt đầu {skill}",
						},
						SlotResponses: map[string][]string{
							"lập trình": skillProgrammingResponses,
							"vẽ":        skillDrawingResponses,
							"tiếng anh":  skillEnglishResponses,
						},
						Responses: skillDefaultResponses,
					},
				},
			},
			{
				ID:       "general_questions",
				Priority: 1.0,
				Groups: []PatternGroup{
					{
						Name: "should_i",
						Keywords: []string{
							"có nên", "có nên học", "có tốt không", "có được không",
						},
						Responses: shouldIResponses,
					},
					{
						Name: "future_prospects",
						Keywords: []string{
							"tương lai", "xu hướng", "triển vọng", "phát triển", "cơ hội",
						},
						Responses: futureResponses,
					},
				},
			},
			{
				ID:       "greetings",
				Priority: 0.9,
				Groups: []PatternGroup{
					{
						Name:      "vietnamese_greeting",
						Keywords:  []string{"xin chào", "chào"},
						Responses: greetingResponses,
					},
					{
						Name:      "english_greeting",
						Keywords:  []string{"hello", "hi", "alo", "hey"},
						Weights:   map[string]float64{"hello": 2.0},
						Responses: greetingResponses,
					},
				},
			},
			{
				ID:       "encouragement",
				Priority: 0.8,
				Groups: []PatternGroup{
					{
						Name: "worry",
						Keywords: []string{
							"lo lắng", "sợ", "buồn", "chán", "thất vọng", "áp lực quá",
						},
						Responses: encouragementResponses,
					},
				},
			},
		},
	}
}
