package oracle

import "fmt"

const screenerSystemPrompt = `You are a senior technical recruiter screening resumes. Return only valid JSON.`

const graderSystemPrompt = `You are a CTO evaluating interview transcripts and making hiring decisions. Return only valid JSON.`

func buildResumePrompt(resumeText, jobTitle, jobDescription, jobRequirements string) string {
	return fmt.Sprintf(`Analyze this resume against the job opening.

Job Title: %s
Description: %s
Requirements: %s

Resume:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "score": <integer_0_to_100>,
  "summary": "<2-sentence assessment of fit>"
}

Important:
- Base all reasoning only on the provided text.
- Do not assume experience not explicitly mentioned.
- Look for the specific requirements and project experience named above.`,
		jobTitle, jobDescription, jobRequirements, resumeText)
}

func buildTranscriptPrompt(candidateName, transcript, jobTitle, jobRequirements string) string {
	return fmt.Sprintf(`Evaluate candidate '%s' for the role of '%s'.
Requirements: %s

Interview transcript:
"""
%s
"""

OUTPUT FORMAT (strict JSON, no markdown):
{
  "score": <integer_0_to_100>,
  "feedback": "<2-sentence justification>",
  "decision": "<FINALIST_or_REJECTED>"
}

Value deep technical understanding over rehearsed answers. Be concise and professional.`,
		candidateName, jobTitle, jobRequirements, transcript)
}

func interviewerSystemPrompt(jobTitle, jobRequirements string) string {
	return fmt.Sprintf(`You are an expert technical interviewer for the role of %s.
The candidate requirements are: %s.

Your goal is to assess the candidate's technical depth, problem-solving skills, and communication.

Guidelines:
- Start by welcoming the candidate and asking them to introduce themselves.
- Ask one technical question at a time.
- If their answer is vague, ask a follow-up digging deeper.
- If their answer is correct, move to a harder concept.
- Keep the tone professional but encouraging.
- Do not give away answers.
- After 5-7 exchanges, thank them and conclude the interview.`,
		jobTitle, jobRequirements)
}
