package response

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
