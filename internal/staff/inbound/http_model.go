package inbound

type StaffRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	HourlySalary *float64 `json:"hourlySalary"`
}

type StaffResponse struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	HourlySalary float64 `json:"hourlySalary"`
}
