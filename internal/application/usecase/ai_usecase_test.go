package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tote-api/internal/application/dto"
	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/application/prompt"
	"github.com/jhoicas/tote-api/internal/application/usecase"
)

// mockLLM implementa ports.LLMService con testify/mock. El valor configurado en Return
// se copia sobre el target como haría un adaptador real.
type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) CompleteStructured(ctx context.Context, req ports.CompletionRequest, target any) error {
	args := m.Called(ctx, req, target)
	if fill, ok := args.Get(0).(func(any)); ok && fill != nil {
		fill(target)
	}
	return args.Error(1)
}

func newUseCase(t *testing.T, llm ports.LLMService) *usecase.AIUseCase {
	t.Helper()
	b, err := prompt.NewBuilder("es-AR")
	require.NoError(t, err)
	return usecase.NewAIUseCase(llm, b)
}

func TestGetRecommendations_DevuelveCampoTalCual(t *testing.T) {
	llm := new(mockLLM)
	expected := []string{"queso rallado", "salsa de tomate", "aceite de oliva", "albahaca"}
	llm.On("CompleteStructured", mock.Anything, mock.MatchedBy(func(req ports.CompletionRequest) bool {
		return req.Model == "llama-3.3-70b-versatile" &&
			req.Schema.Name == prompt.SchemaRecommendations &&
			len(req.Messages) == 1 && req.Messages[0].Role == ports.RoleUser
	}), mock.AnythingOfType("*dto.RecommendationResponse")).
		Return(func(target any) {
			target.(*dto.RecommendationResponse).RecommendedItems = expected
		}, nil).Once()

	got, err := newUseCase(t, llm).GetRecommendations(context.Background(), []string{"fideos", "ajo", "cebolla"})
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	llm.AssertExpectations(t)
}

func TestGetRecommendations_PromptIncluyeLista(t *testing.T) {
	llm := new(mockLLM)
	llm.On("CompleteStructured", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	_, err := newUseCase(t, llm).GetRecommendations(context.Background(), []string{"fideos", "ajo", "cebolla", "pan"})
	require.NoError(t, err)

	req := llm.Calls[0].Arguments.Get(1).(ports.CompletionRequest)
	assert.Contains(t, req.Messages[0].Content, "Recently added products: fideos, ajo, cebolla\n")
	assert.Contains(t, req.Messages[0].Content, "Current shopping list: fideos, ajo, cebolla, pan\n")
}

func TestGetDishIngredients(t *testing.T) {
	llm := new(mockLLM)
	expected := []string{"garbanzos", "tahini", "jugo de limón", "aceite de oliva", "ajo"}
	llm.On("CompleteStructured", mock.Anything, mock.MatchedBy(func(req ports.CompletionRequest) bool {
		return req.Schema.Name == prompt.SchemaDishIngredients
	}), mock.AnythingOfType("*dto.DishIngredientsResponse")).
		Return(func(target any) {
			target.(*dto.DishIngredientsResponse).Ingredients = expected
		}, nil).Once()

	got, err := newUseCase(t, llm).GetDishIngredients(context.Background(), "hummus")
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	req := llm.Calls[0].Arguments.Get(1).(ports.CompletionRequest)
	assert.Contains(t, req.Messages[0].Content, "make hummus.")
}

func TestCategorizeProducts_SinValidarClaves(t *testing.T) {
	llm := new(mockLLM)
	// "Golosinas" no pertenece al vocabulario: se devuelve igual.
	expected := map[string][]string{"Lacteos": {"queso", "leche"}, "Golosinas": {"alfajor"}}
	llm.On("CompleteStructured", mock.Anything, mock.MatchedBy(func(req ports.CompletionRequest) bool {
		return req.Schema.Name == prompt.SchemaCategorization
	}), mock.AnythingOfType("*dto.CategorizationResponse")).
		Return(func(target any) {
			target.(*dto.CategorizationResponse).Categories = expected
		}, nil).Once()

	got, err := newUseCase(t, llm).CategorizeProducts(context.Background(),
		map[string][]string{"Lacteos": {"queso"}}, []string{"leche", "alfajor"})
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOperaciones_PropaganErrorDelProveedor(t *testing.T) {
	providerErr := errors.New("API Error")
	llm := new(mockLLM)
	llm.On("CompleteStructured", mock.Anything, mock.Anything, mock.Anything).Return(nil, providerErr)
	uc := newUseCase(t, llm)
	ctx := context.Background()

	_, err := uc.GetRecommendations(ctx, []string{"pan"})
	assert.ErrorIs(t, err, providerErr)

	_, err = uc.GetDishIngredients(ctx, "empanadas")
	assert.ErrorIs(t, err, providerErr)

	_, err = uc.CategorizeProducts(ctx, map[string][]string{}, []string{"pan"})
	assert.ErrorIs(t, err, providerErr)

	llm.AssertNumberOfCalls(t, "CompleteStructured", 3)
}
