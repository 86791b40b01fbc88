package i18n

import "golang.org/x/text/language"

// Key identifies a translatable notice.
type Key string

const (
	TryAgain           Key = "try_again"
	SignInRequired     Key = "sign_in_required"
	AdminRequired      Key = "admin_required"
	CollectionRequired Key = "collection_required"
	CityNotFound       Key = "city_not_found"
	NothingToExport    Key = "nothing_to_export"
	UnsupportedCountry Key = "unsupported_country"
)

var catalog = map[Key]map[language.Tag]string{
	TryAgain: {
		language.English: "Something went wrong. Please try again.",
		language.Spanish: "Algo salió mal. Inténtalo de nuevo.",
		language.French:  "Une erreur est survenue. Veuillez réessayer.",
	},
	SignInRequired: {
		language.English: "Please sign in to continue.",
		language.Spanish: "Inicia sesión para continuar.",
		language.French:  "Veuillez vous connecter pour continuer.",
	},
	AdminRequired: {
		language.English: "You do not have access to the admin panel.",
		language.Spanish: "No tienes acceso al panel de administración.",
		language.French:  "Vous n'avez pas accès au panneau d'administration.",
	},
	CollectionRequired: {
		language.English: "Choose a collection or create a new one to save this place.",
		language.Spanish: "Elige una colección o crea una nueva para guardar este lugar.",
		language.French:  "Choisissez une collection ou créez-en une pour enregistrer ce lieu.",
	},
	CityNotFound: {
		language.English: "We couldn't find that city.",
		language.Spanish: "No encontramos esa ciudad.",
		language.French:  "Nous n'avons pas trouvé cette ville.",
	},
	NothingToExport: {
		language.English: "Run a search before exporting.",
		language.Spanish: "Haz una búsqueda antes de exportar.",
		language.French:  "Lancez une recherche avant d'exporter.",
	},
	UnsupportedCountry: {
		language.English: "Listings are only available in the United States for now.",
		language.Spanish: "Por ahora solo hay resultados en Estados Unidos.",
		language.French:  "Les résultats ne sont disponibles qu'aux États-Unis pour le moment.",
	},
}

// Notice returns the text of key in tag, falling back to English.
func Notice(tag language.Tag, key Key) string {
	texts, ok := catalog[key]
	if !ok {
		return string(key)
	}
	if s, ok := texts[tag]; ok {
		return s
	}
	return texts[Supported[0]]
}
