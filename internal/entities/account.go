package entities

type Account struct {
	ID       int
	Nickname string
	Email    string
	FullName string
}

// Seller расширяет аккаунт контактными и платёжными данными продавца.
type Seller struct {
	AccountID int
	Nickname  string
	Email     string
	FullName  string
	Mobile    string
	BankName  string
	BankAccNo string
}
