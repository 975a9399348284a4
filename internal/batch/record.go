package batch

// Record represents one input row plus its translation outcome
type Record struct {
	DocumentName string `json:"document_name"`
	// TranslatedText stays nil until a translation succeeded
	TranslatedText *string `json:"text_german,omitempty"`
	SourceText     string  `json:"text_original"`
	PageNumber     uint    `json:"page_number"`
	Comment        string  `json:"comment"`
}

// IsTranslated reports whether the record carries a translation
func (r Record) IsTranslated() bool {
	return r.TranslatedText != nil
}

// Translation returns the translated text or an empty string
func (r Record) Translation() string {
	if r.TranslatedText == nil {
		return ""
	}
	return *r.TranslatedText
}
