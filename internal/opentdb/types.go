package opentdb

// apiResponse is the wire shape of one question-bank reply.
type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

// rawQuestion is a single record as the upstream sends it: HTML-entity
// escaped texts, the correct answer split out from the incorrect ones.
type rawQuestion struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}
