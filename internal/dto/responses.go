package dto

import "github.com/ignatzorin/job-qualifier/internal/domain/entity"

// PositionResponse описывает позицию каталога без предикатов.
type PositionResponse struct {
	Title    string   `json:"title"`
	Required []string `json:"required"`
	Desired  []string `json:"desired"`
}

// NewPositionResponses собирает описание каталога для API и CLI.
func NewPositionResponses(positions []entity.Position) []PositionResponse {
	out := make([]PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp := PositionResponse{
			Title:    p.Title,
			Required: make([]string, 0, len(p.Required)),
			Desired:  make([]string, 0, len(p.Desired)),
		}
		for _, r := range p.Required {
			resp.Required = append(resp.Required, r.Failure)
		}
		for _, d := range p.Desired {
			resp.Desired = append(resp.Desired, d.Description)
		}
		out = append(out, resp)
	}
	return out
}
