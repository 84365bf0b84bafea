package assistant

// Category is one of the fixed transaction categories.
type Category string

const (
	CategoryFoodAndDrinks  Category = "Food & Drinks"
	CategoryShopping       Category = "Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// Categories lists every valid Category in prompt order.
var Categories = []Category{
	CategoryFoodAndDrinks,
	CategoryShopping,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryBills,
	CategoryIncome,
	CategoryOther,
}

// IsValid reports whether c is a member of the category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Kind discriminates the two result shapes.
type Kind string

const (
	KindTransaction Kind = "transaction"
	KindResponse    Kind = "response"
)

// Result is either a TransactionResult or a ConversationResult.
type Result interface {
	Kind() Kind
}

// TransactionResult is a transaction extracted from the user's message.
// Amount is negative for expenses and positive for income.
type TransactionResult struct {
	Type     Kind     `json:"type"`
	Title    string   `json:"title"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
}

// Kind implements Result.
func (TransactionResult) Kind() Kind { return KindTransaction }

// ConversationResult is a plain conversational reply.
type ConversationResult struct {
	Type    Kind   `json:"type"`
	Content string `json:"content"`
}

// Kind implements Result.
func (ConversationResult) Kind() Kind { return KindResponse }

// NewTransaction builds a TransactionResult with its discriminator set.
func NewTransaction(title string, amount float64, category Category) TransactionResult {
	return TransactionResult{Type: KindTransaction, Title: title, Amount: amount, Category: category}
}

// NewConversation builds a ConversationResult with its discriminator set.
func NewConversation(content string) ConversationResult {
	return ConversationResult{Type: KindResponse, Content: content}
}

// --- UseCase Inputs ---

type ChatInput struct {
	UserID  string
	Message string
}
