package response

type EnumsResponse struct {
	Categories    []string `json:"categories"`
	Genders       []string `json:"genders"`
	Roles         []string `json:"roles"`
	OrderStatuses []string `json:"order_statuses"`
}
