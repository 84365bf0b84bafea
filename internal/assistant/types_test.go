package assistant_test

import (
	"encoding/json"
	"testing"

	"expense-assistant/internal/assistant"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range assistant.Categories {
		if !c.IsValid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []assistant.Category{"", "food", "Groceries", "Food &Drinks"} {
		if c.IsValid() {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestResult_JSONShape(t *testing.T) {
	b, err := json.Marshal(assistant.NewTransaction("Coffee", -5, assistant.CategoryFoodAndDrinks))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["type"] != "transaction" || got["title"] != "Coffee" || got["amount"] != -5.0 || got["category"] != "Food & Drinks" {
		t.Errorf("unexpected transaction json: %s", b)
	}

	b, err = json.Marshal(assistant.NewConversation("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"type":"response","content":"hi"}` {
		t.Errorf("unexpected conversation json: %s", b)
	}
}
