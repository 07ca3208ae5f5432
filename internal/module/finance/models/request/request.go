package request

type CreateExpense struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       string `json:"notes"`
}

type UpdateExpense struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       string `json:"notes"`
}

type CreateSponsorship struct {
	Name    string `json:"name" validate:"required"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type UpdateSponsorship struct {
	Name    string `json:"name" validate:"required"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}
