package requests

// GenerateHashtags is the hashtag and description form.
type GenerateHashtags struct {
	Category string `form:"category" sanitize:"trim" validate:"required,max=500" message:"Please enter a category or topic."`
	Audience string `form:"audience" sanitize:"trim"`
	Platform string `form:"platform" sanitize:"line"`
	Tone     string `form:"tone"     sanitize:"line"`
	Purpose  string `form:"purpose"  sanitize:"line"`
}
