package models

import (
	"encoding/json"
	"fmt"
)

// PromptRequest is the payload for /api/generate-answer.
type PromptRequest struct {
	Prompt      string   `json:"prompt" binding:"required"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

// Assessment is a classification result computed on the frontend and
// passed through for re-validation.
type Assessment struct {
	DominantStyle string             `json:"dominantStyle"`
	Scores        map[string]float64 `json:"scores"`
	Percentage    int                `json:"percentage"`
}

// LearningPathResult is the response of /api/predict-learning-path.
type LearningPathResult struct {
	UserCategory       string         `json:"user_category"`
	Scores             map[string]int `json:"scores"`
	Percentage         int            `json:"percentage"`
	Message            string         `json:"message"`
	RecommendedCourses []string       `json:"recommended_courses"`
}

// PredictLearningPathRequest accepts either a precomputed assessment or
// a raw answers map. The two shapes are discriminated explicitly on the
// presence of the dominantStyle and scores keys; exactly one of
// Assessment and Answers is populated after a successful unmarshal.
type PredictLearningPathRequest struct {
	Assessment *Assessment
	Answers    map[string]string
}

func (r *PredictLearningPathRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	_, hasStyle := fields["dominantStyle"]
	_, hasScores := fields["scores"]
	if hasStyle && hasScores {
		var a Assessment
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		r.Assessment = &a
		return nil
	}

	answers := make(map[string]string, len(fields))
	for k, raw := range fields {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// Non-string answers (numbers, booleans) are coerced.
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			s = fmt.Sprint(v)
		}
		answers[k] = s
	}
	r.Answers = answers
	return nil
}

// LearningPathContent is the response of /api/learning-path/:courseName.
type LearningPathContent struct {
	CourseName      string           `json:"course_name"`
	DatasetFilename string           `json:"dataset_filename"`
	LearningMode    string           `json:"learning_mode"`
	TotalModules    int              `json:"total_modules"`
	Content         []map[string]any `json:"content"`
}

// CreateUserRequest is the placeholder admin payload; nothing is stored.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
