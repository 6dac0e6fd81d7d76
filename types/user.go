package types

// UserBrief 列表中展示的用户
type UserBrief struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type PartnerInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserInfo 当前用户，附带配对对象
type UserInfo struct {
	ID          uint64       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	PartnerCode string       `json:"partner_code"`
	Partner     *PartnerInfo `json:"partner"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
