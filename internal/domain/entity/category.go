package entity

// CatchAllCategory es la categoría de respaldo para productos que el vocabulario no cubre.
const CatchAllCategory = "Otros"

// StoreCategories es el vocabulario cerrado de góndolas que se ofrece al modelo al categorizar.
// El orden es el que aparece en el prompt; la categoría de respaldo va última.
var StoreCategories = []string{
	"Panaderia",
	"Lacteos",
	"Carniceria",
	"Fiambres y embutidos",
	"Frutas y verduras",
	"Almacen",
	"Bebidas",
	"Congelados",
	"Rotiseria",
	"Limpieza",
	"Perfumeria e higiene personal",
	"Mascotas",
	"Bazar y hogar",
	"Ferreteria",
	"Papeleria y libreria",
	"Textil y vestimenta",
	CatchAllCategory,
}

// IsStoreCategory indica si name pertenece al vocabulario. Las respuestas del modelo
// no se filtran con esta función.
func IsStoreCategory(name string) bool {
	for _, c := range StoreCategories {
		if c == name {
			return true
		}
	}
	return false
}
