package entity

// recentWindow cantidad de productos considerados "agregados recientemente".
const recentWindow = 3

// ShoppingList lista de compras tal como la envía el cliente. El orden importa.
type ShoppingList []string

// Recent devuelve los primeros tres productos, o la lista completa si tiene menos.
func (l ShoppingList) Recent() []string {
	if len(l) >= recentWindow {
		return l[:recentWindow]
	}
	return l
}
