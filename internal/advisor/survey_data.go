package advisor

// Scoring recipes for the candidate fields of study. Content only.

var fieldRules = []FieldRule{
	{
		ID:      "1",
		Code:    "IT",
		Name:    "Công nghệ thông tin",
		Base:    60,
		Ceiling: 98,
		Bonuses: []SurveyBonus{
			{Points: 20, When: SurveyCondition{Interest: "Công nghệ thông tin"}},
			{Points: 15, When: SurveyCondition{Skill: "Lập trình"}},
			{Points: 10, When: SurveyCondition{Skill: "Tư duy logic"}},
			{Points: 15, When: SurveyCondition{Subject: "math", MinScore: 8}},
			{Points: 10, When: SurveyCondition{Subject: "physics", MinScore: 7}},
			{Points: 10, When: SurveyCondition{GoalKeyword: "lập trình"}},
		},
		Reasons: []ReasonRule{
			{When: SurveyCondition{Subject: "math", MinScore: 7}, Text: "Điểm toán cao"},
			{When: SurveyCondition{Skill: "Lập trình"}, Text: "Đã có nền tảng lập trình"},
			{When: SurveyCondition{Skill: "Tư duy logic"}, Text: "Tư duy logic tốt"},
		},
	},
	{
		ID:      "2",
		Code:    "GD",
		Name:    "Thiết kế đồ họa",
		Base:    50,
		Ceiling: 95,
		Bonuses: []SurveyBonus{
			{Points: 25, When: SurveyCondition{Interest: "Thiết kế đồ họa"}},
			{Points: 20, When: SurveyCondition{Skill: "Sáng tạo"}},
			{Points: 15, When: SurveyCondition{Skill: "Thiết kế"}},
			{Points: 15, When: SurveyCondition{Interest: "Nghệ thuật"}},
			{Points: 10, When: SurveyCondition{LearningStyle: "visual"}},
		},
		Reasons: []ReasonRule{
			{When: SurveyCondition{Skill: "Sáng tạo"}, Text: "Có khả năng sáng tạo"},
			{When: SurveyCondition{Interest: "Nghệ thuật"}, Text: "Yêu thích nghệ thuật"},
			{When: SurveyCondition{LearningStyle: "visual"}, Text: "Học tốt qua hình ảnh"},
		},
	},
	{
		ID:      "3",
		Code:    "MKT",
		Name:    "Marketing",
		Base:    55,
		Ceiling: 92,
		Bonuses: []SurveyBonus{
			{Points: 20, When: SurveyCondition{Interest: "Marketing"}},
			{Points: 15, When: SurveyCondition{Skill: "Giao tiếp"}},
			{Points: 15, When: SurveyCondition{Skill: "Thuyết trình"}},
			{Points: 5, When: SurveyCondition{WorkEnvironment: "office"}},
			{Points: 10, When: SurveyCondition{Subject: "english", MinScore: 7}},
		},
		Reasons: []ReasonRule{
			{When: SurveyCondition{Skill: "Giao tiếp"}, Text: "Kỹ năng giao tiếp tốt"},
			{When: SurveyCondition{Skill: "Thuyết trình"}, Text: "Tự tin thuyết trình"},
			{When: SurveyCondition{Subject: "english", MinScore: 7}, Text: "Tiếng Anh khá"},
		},
	},
}

var genericReasonFillers = []string{
	"Phù hợp với sở thích của bạn",
	"Phù hợp với năng lực hiện tại",
}
