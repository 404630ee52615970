package services

import "fmt"

const noJobDescriptionPlaceholder = "No job description provided"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt substitutes the resume text and job description
// into the analysis template verbatim.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = noJobDescriptionPlaceholder
	}

	return fmt.Sprintf(`You are an expert resume reviewer and career coach.

Analyze the resume below and return ONLY a JSON object.
No extra text, just the JSON.

Resume:
%s

Job Description:
%s

Return this exact JSON format:
{
  "score": <number between 0 and 100>,
  "strengths": [<list of 3 strengths as strings>],
  "weaknesses": [<list of 3 weaknesses as strings>],
  "keywords": [<list of 4 missing keywords as strings>]
}`,
		resumeText, jobDescription)
}
