package food

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFoodLeavesIDEmpty(t *testing.T) {
	price := 42.5
	f := NewFood(FoodRequest{Name: "Pizza", Image: "https://img.example/pizza.png", Price: &price})
	require.Empty(t, f.ID)
	require.Equal(t, "Pizza", f.Name)
	require.Equal(t, "https://img.example/pizza.png", f.Image)
	require.NotNil(t, f.Price)
	require.Equal(t, 42.5, *f.Price)

	// request and record must not share the price pointer
	price = 1
	require.Equal(t, 42.5, *f.Price)
}

func TestNewFoodResponsePreservesFields(t *testing.T) {
	zero := 0.0
	f := &Food{ID: "f-1", Name: "Água", Image: "i", Price: &zero}
	resp := NewFoodResponse(f)
	require.Equal(t, "f-1", resp.ID)
	require.Equal(t, "Água", resp.Name)
	require.Equal(t, "i", resp.Image)
	require.NotNil(t, resp.Price)
	require.Equal(t, 0.0, *resp.Price)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"f-1","name":"Água","image":"i","price":0}`, string(b))
}

func TestFoodResponseOmitsAbsentFields(t *testing.T) {
	b, err := json.Marshal(NewFoodResponse(&Food{ID: "abc", Name: "Pizza"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"abc","name":"Pizza"}`, string(b))
}
