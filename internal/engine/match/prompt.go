package match

// Prompts sent to the LLM analyzers. Each demands strict JSON so the
// responses unmarshal directly into the engine types.

const resumeAnalyzePrompt = `You are a resume analyst. Read the resume below and respond with ONLY a JSON object, no prose and no code fences, with exactly these keys:
{
  "summary": "2-3 sentence professional summary",
  "skills": ["up to 15 distinct skills, title-cased"],
  "experience": <total years of professional experience, integer>,
  "educationLevel": "one of: PhD, Master's, Bachelor's, Associate's, High School",
  "category": "the candidate's professional field, e.g. Software Engineering"
}`

const jdAnalyzePrompt = `You are a recruiting analyst. Read the job description below and respond with ONLY a JSON object, no prose and no code fences, with exactly these keys:
{
  "summary": "one sentence describing the position",
  "skills": ["up to 20 required or desired skills"],
  "requirements": ["explicit requirements such as degrees or years of experience"],
  "experience": "required experience range, e.g. 3-5 years",
  "category": "the job title category, e.g. NLP Engineer"
}`

const scorePrompt = `You are a technical recruiter scoring how well a resume matches a search query. Respond with ONLY a JSON object, no prose and no code fences:
{
  "score": <integer 0-100>,
  "reason": "one or two sentences explaining the score"
}`

const suggestionsPrompt = `You are a career coach. Given the matched and missing skills below, write 2-3 sentences of concrete, encouraging advice on how the candidate can improve their fit for the role. Respond with the advice text only, no JSON and no preamble.`
