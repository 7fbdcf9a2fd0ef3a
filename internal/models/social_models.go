package models

type SocialSearchResponse struct {
	Data []SocialPostData `json:"data"`
	Meta SocialSearchMeta `json:"meta"`
}

type SocialPostData struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
	Lang      string `json:"lang"`
}

type SocialSearchMeta struct {
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}
