// Package prompt builds the text sent to language-model backends.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ai4life/career-advisor-go/internal/domain"
)

const chatSystemPrompt = `Bạn là trợ lý tư vấn hướng nghiệp cho học sinh Việt Nam.
Hãy trả lời các câu hỏi về:
- Các ngành học và chương trình đào tạo
- Tư vấn định hướng nghề nghiệp
- Thông tin tuyển sinh, học phí và học bổng
- Cơ hội việc làm sau tốt nghiệp

Trả lời bằng tiếng Việt, thân thiện, cụ thể và hữu ích.`

// BuildChatPrompt frames one chat turn with recent history.
func BuildChatPrompt(message string, history []domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Lịch sử hội thoại gần đây:\n")
		for _, m := range history {
			role := "Học sinh"
			if m.Role == domain.RoleAssistant {
				role = "Trợ lý"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Học sinh: %s\nTrợ lý:", message)
	return b.String()
}

// BuildSurveyAnalysisPrompt asks for a structured career-fit analysis
// in JSON form.
func BuildSurveyAnalysisPrompt(s *domain.Survey, majors []domain.Major) string {
	scores, _ := json.Marshal(s.AcademicScores)

	var b strings.Builder
	b.WriteString("Analyze this student's career fit based on their survey data:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Age: %d\n", s.Age)
	fmt.Fprintf(&b, "Current Grade: %s\n", s.CurrentGrade)
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(s.Interests, ", "))
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(s.Skills, ", "))
	fmt.Fprintf(&b, "Academic Scores: %s\n", scores)
	fmt.Fprintf(&b, "Career Goals: %s\n", s.CareerGoals)
	fmt.Fprintf(&b, "Learning Style: %s\n", s.LearningStyle)
	fmt.Fprintf(&b, "Work Environment Preference: %s\n", s.WorkEnvironmentPreference)

	if len(majors) > 0 {
		b.WriteString("\nAvailable Majors:\n")
		for _, m := range majors {
			fmt.Fprintf(&b, "- %s (%s): %s\n", m.Name, m.Code, m.Description)
		}
	}

	b.WriteString(`
Provide a detailed analysis as a JSON object with these fields:
{
  "recommendedFields": [{"fieldId": "...", "fieldName": "...", "fieldCode": "...", "matchScore": 0, "reasons": ["..."]}],
  "analysisSummary": "... (in Vietnamese)",
  "strengths": ["..."],
  "advice": ["..."],
  "confidenceScore": 0.0
}
Return the top 3 recommended fields with match scores between 0 and 100.
Write every text field in Vietnamese. Respond with valid JSON only.`)

	return b.String()
}
