// Package prompt arma las instrucciones en lenguaje natural que se envían al modelo.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/jhoicas/tote-api/internal/domain/entity"
)

// DefaultMarketLocale mercado por defecto de la aplicación.
const DefaultMarketLocale = "es-AR"

const recommendationTemplate = `
You are an expert assistant who recommends complementary products for shopping lists in %[1]s.
Your task is to suggest products that go well with the most recently added products. Especially for preparing meals.

### Instructions:
1. Analyze each of the last 3 products added: %[2]s
2. For each recent product, recommend exactly 4 complementary products typically purchased together in %[1]s
3. Do not recommend products already in the current list: %[3]s
4. Consider the complete context of the list to make coherent recommendations
5. Prioritize products that complement multiple items on the list when possible

### Examples:
%[4]s
### Context
Current shopping list: %[3]s
Recently added products: %[2]s
`

const dishIngredientsTemplate = `
List the ingredients needed to make %[1]s. Answer in spanish. Do not output the name of the dish. The user is from %[2]s, so take in consideration that they might not have access to certain products.
`

const categorizationTemplate = `
I have the following products already categorized:
%[1]s

Please categorize these additional products into appropriate categories:
%[2]s

Available categories:
%[3]s
The categories should be the available categories listed above.
If you can't categorize a product, just return it in the "%[4]s" category.
Answer in spanish. The user is from %[5]s, so take in consideration that they might not have access to certain products.
`

// recommendationExample ejemplo fijo que fija estilo y formato de las recomendaciones.
type recommendationExample struct {
	list            []string
	recent          []string
	recommendations []string
}

var recommendationExamples = []recommendationExample{
	{
		list:            []string{"leche", "pan", "ajo", "cebolla", "fideos"},
		recent:          []string{"ajo", "cebolla", "fideos"},
		recommendations: []string{"salsa de tomate", "queso rallado", "aceite de oliva", "albahaca", "vino tinto"},
	},
	{
		list:            []string{"manteca", "pan lactal", "azúcar", "café"},
		recent:          []string{"pan lactal", "azúcar", "café"},
		recommendations: []string{"dulce de leche", "mermelada", "medialunas", "yogur", "frutas para el desayuno"},
	},
	{
		list:            []string{"limón", "carne", "carbón", "sal gruesa"},
		recent:          []string{"carne", "carbón", "sal gruesa"},
		recommendations: []string{"chimichurri", "chorizo", "morcilla", "ensalada", "pan", "fernet"},
	},
	{
		list:            []string{"arroz", "pollo", "tomate", "cebolla", "lechuga", "zanahoria", "pepino"},
		recent:          []string{"lechuga", "zanahoria", "pepino"},
		recommendations: []string{"aceite de oliva", "vinagre", "limón", "rúcula", "aderezo para ensalada"},
	},
	{
		list:            []string{"leche", "manteca", "harina", "azúcar", "huevos"},
		recent:          []string{"harina", "azúcar", "huevos"},
		recommendations: []string{"polvo para hornear", "esencia de vainilla", "chocolate", "dulce de leche", "crema"},
	},
}

// Builder arma los prompts de las tres operaciones para un mercado dado.
// No guarda estado mutable: se puede compartir entre peticiones concurrentes.
type Builder struct {
	market string
}

// NewBuilder construye el builder a partir de una etiqueta BCP-47 (ej. "es-AR").
// El nombre del mercado se deriva de la región de la etiqueta.
func NewBuilder(locale string) (*Builder, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultMarketLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("prompt: locale %q inválido: %w", locale, err)
	}
	region, conf := tag.Region()
	if conf == language.No {
		return nil, fmt.Errorf("prompt: locale %q no define una región", locale)
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return nil, fmt.Errorf("prompt: región %s sin nombre", region)
	}
	return &Builder{market: name}, nil
}

// Market devuelve el nombre del mercado que se menciona en los prompts.
func (b *Builder) Market() string {
	return b.market
}

// Recommendations arma el prompt de recomendaciones de productos complementarios.
func (b *Builder) Recommendations(products entity.ShoppingList) string {
	var examples strings.Builder
	for i, ex := range recommendationExamples {
		fmt.Fprintf(&examples, "\n#### Example %d:\n", i+1)
		fmt.Fprintf(&examples, "Current shopping list: %s\n", quotedList(ex.list))
		fmt.Fprintf(&examples, "Recently added products: %s\n", quotedList(ex.recent))
		fmt.Fprintf(&examples, "Recommendations: %s\n", quotedList(ex.recommendations))
	}
	return fmt.Sprintf(recommendationTemplate,
		b.market,
		strings.Join(products.Recent(), ", "),
		strings.Join(products, ", "),
		examples.String(),
	)
}

// DishIngredients arma el prompt de ingredientes de un plato.
func (b *Builder) DishIngredients(dishName string) string {
	return fmt.Sprintf(dishIngredientsTemplate, dishName, b.market)
}

// Categorization arma el prompt de categorización. El mapeo existente se serializa
// como JSON indentado para dar contexto al modelo.
func (b *Builder) Categorization(categorized map[string][]string, uncategorized []string) (string, error) {
	if categorized == nil {
		categorized = map[string][]string{}
	}
	existing, err := json.MarshalIndent(categorized, "", "  ")
	if err != nil {
		return "", fmt.Errorf("prompt: serializar categorías existentes: %w", err)
	}

	var vocabulary strings.Builder
	for _, c := range entity.StoreCategories {
		fmt.Fprintf(&vocabulary, "    - %s\n", c)
	}

	return fmt.Sprintf(categorizationTemplate,
		string(existing),
		strings.Join(uncategorized, ", "),
		vocabulary.String(),
		entity.CatchAllCategory,
		b.market,
	), nil
}

// quotedList formatea una lista como ["a", "b"], igual que en los ejemplos.
func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
