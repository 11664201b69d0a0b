package engine

// ResumeAnalysis is the structured result of analyzing one resume text.
// Produced fresh on every call and never mutated afterwards.
type ResumeAnalysis struct {
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     int      `json:"experience"`
	EducationLevel string   `json:"educationLevel"`
	Category       string   `json:"category"`
}

// JobDescriptionAnalysis is the structured result of analyzing a job posting.
type JobDescriptionAnalysis struct {
	Summary      string   `json:"summary"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
	Experience   string   `json:"experience"` // "lo-hi years" range
	Category     string   `json:"category"`
}

// MatchResult is one scorer verdict for a (query, resume) pair.
// Score is always clamped to [0,100]. Source identifies the scorer that
// produced it ("keyword_matching", "llm", or a *_fallback tag).
type MatchResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Source string `json:"source"`
}

// ResumeRecord is a stored resume with its analysis attributes.
// Experience is kept as a string ("5", "5+") because uploads may carry
// free-form values; the scorer coerces it.
type ResumeRecord struct {
	ID             string   `json:"id"`
	Filename       string   `json:"filename"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	EducationLevel string   `json:"educationLevel"`
	Category       string   `json:"category"`
	UploadedAt     string   `json:"uploaded_at"`
}

// --- MCP tool I/O ---

// ResumeAnalyzeInput is the input for resume_analyze.
type ResumeAnalyzeInput struct {
	Text string `json:"text"`
}

// ResumeAnalyzeOutput is the output for resume_analyze.
type ResumeAnalyzeOutput struct {
	Analysis ResumeAnalysis `json:"analysis"`
	Source   string         `json:"source"` // "llm" or "regex"
}

// ResumeUploadInput is the input for resume_upload.
type ResumeUploadInput struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ResumeUploadOutput is the output for resume_upload.
type ResumeUploadOutput struct {
	Record ResumeRecord `json:"record"`
}

// ResumeListInput is the input for resume_list.
type ResumeListInput struct {
	Limit int `json:"limit,omitempty"`
}

// ResumeListOutput is the output for resume_list.
type ResumeListOutput struct {
	Resumes []ResumeRecord `json:"resumes"`
	Total   int            `json:"total"`
}

// ResumeDeleteInput is the input for resume_delete.
type ResumeDeleteInput struct {
	ID string `json:"id"`
}

// ResumeDeleteOutput is the output for resume_delete.
type ResumeDeleteOutput struct {
	Message string `json:"message"`
}

// ResumeSearchInput is the input for resume_search.
type ResumeSearchInput struct {
	Query  string `json:"query"`
	Scorer string `json:"scorer,omitempty"` // "keyword" (default) or "ai"
	Limit  int    `json:"limit,omitempty"`
}

// RankedResume is one resume with its match verdict attached.
type RankedResume struct {
	Resume ResumeRecord `json:"resume"`
	Match  MatchResult  `json:"match"`
}

// ResumeSearchOutput is the output for resume_search, sorted by score.
type ResumeSearchOutput struct {
	Query   string         `json:"query"`
	Results []RankedResume `json:"results"`
	Summary string         `json:"summary"`
}

// JDAnalyzeInput is the input for jd_analyze. Exactly one of Text or URL
// should be set; URL fetches the posting and extracts its text first.
type JDAnalyzeInput struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// JDAnalyzeOutput is the output for jd_analyze.
type JDAnalyzeOutput struct {
	Analysis JobDescriptionAnalysis `json:"analysis"`
	Source   string                 `json:"source"` // "llm" or "regex"
}

// SuggestionsInput is the input for match_suggestions.
type SuggestionsInput struct {
	ResumeSkills  []string `json:"resume_skills"`
	JDSkills      []string `json:"jd_skills"`
	ResumeSummary string   `json:"resume_summary,omitempty"`
}

// SuggestionsOutput is the output for match_suggestions.
type SuggestionsOutput struct {
	Suggestions   string   `json:"suggestions"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ModelStatusOutput is the output for model_status.
type ModelStatusOutput struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	UsingFallback bool   `json:"using_fallback"`
	Mode          string `json:"mode"`
}
