package coverletters

const instruction = "Please generate a personalized recruiter message and a cover letter."

// BuildPrompt lays out the resume text and job description the way the completion
// service expects them.
func BuildPrompt(resumeText, jobDescription string) string {
	return "Resume:\n" + resumeText + "\n\nJob Description:\n" + jobDescription + "\n\n" + instruction
}
