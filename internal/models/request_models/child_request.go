package request_models

type CreateChildRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=50"`
	Age       int      `json:"age" binding:"required,min=0,max=18"`
	Allergies []string `json:"allergies"`
}

type UpdateChildRequest struct {
	Name      *string   `json:"name" binding:"omitempty,min=1,max=50"`
	Age       *int      `json:"age" binding:"omitempty,min=0,max=18"`
	Allergies *[]string `json:"allergies"`
}

type AwardPointsRequest struct {
	Points int `json:"points" binding:"required"`
}
