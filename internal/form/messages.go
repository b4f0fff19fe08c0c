package form

// Language selects the copy used for field errors and notifications.
type Language string

const (
	LangPT Language = "pt"
	LangEN Language = "en"
)

// Messages is the localized copy for one language.
type Messages struct {
	NameError    string
	EmailError   string
	MessageError string
	SuccessTitle string
	SuccessDesc  string
	GenericError string
}

// catalog is immutable after init; switching language re-points the active
// key, it never mutates the table.
var catalog = map[Language]Messages{
	LangPT: {
		NameError:    "Nome deve ter pelo menos 2 caracteres.",
		EmailError:   "Email inválido.",
		MessageError: "Mensagem deve ter pelo menos 10 caracteres.",
		SuccessTitle: "Mensagem enviada!",
		SuccessDesc:  "Obrigado pelo contato. Retornarei em breve.",
		GenericError: "Erro ao enviar mensagem",
	},
	LangEN: {
		NameError:    "Name must be at least 2 characters.",
		EmailError:   "Invalid email.",
		MessageError: "Message must be at least 10 characters.",
		SuccessTitle: "Message sent!",
		SuccessDesc:  "Thank you for contacting. I'll get back to you soon.",
		GenericError: "Error sending message",
	},
}

// MessagesFor returns the copy for lang, defaulting to Portuguese.
func MessagesFor(lang Language) Messages {
	if msgs, ok := catalog[lang]; ok {
		return msgs
	}
	return catalog[LangPT]
}
