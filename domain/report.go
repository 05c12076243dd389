package domain

// TopQuestionItem is one ranked group of semantically equivalent questions.
type TopQuestionItem struct {
	Representative string   `json:"representative"`
	Count          int      `json:"count"`
	QuestionIDs    []string `json:"questionIds"`
	Slides         []int    `json:"slides"`
	Samples        []string `json:"samples"`
}

type TopQuestionReport struct {
	RoomID         RoomID            `json:"roomId"`
	TotalQuestions int               `json:"totalQuestions"`
	UniqueGroups   int               `json:"uniqueGroups"`
	Top3           []TopQuestionItem `json:"top3"`
}

// SlideQuestion is a question as listed in the top slide report.
type SlideQuestion struct {
	ID         string  `json:"id"`
	Slide      int     `json:"slide"`
	Content    string  `json:"content"`
	Ts         int64   `json:"ts"`
	AudienceID *string `json:"audienceId,omitempty"`
}

// TopSlideReport describes the slide that attracted the most questions.
type TopSlideReport struct {
	RoomID         RoomID          `json:"roomId"`
	Slide          int             `json:"slide"`
	TotalQuestions int             `json:"totalQuestions"`
	Questions      []SlideQuestion `json:"questions"`
	Summary        *string         `json:"summary,omitempty"`
}

func ToSlideQuestion(q QuestionRecord) SlideQuestion {
	return SlideQuestion{
		ID:         q.ID,
		Slide:      q.Slide,
		Content:    q.Content,
		Ts:         q.Ts,
		AudienceID: q.AudienceID,
	}
}
