package request

type UpdateTagsRequest struct {
	Tags []string `json:"tags" binding:"required,max=50,dive,max=64"`
}

type SearchPhotosRequest struct {
	Tags  []string `form:"tag" binding:"max=20,dive,max=64"`
	Query string   `form:"q" binding:"max=200"`
}
