package chat

import (
	"sort"
	"strings"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/apperr"
)

// Separator une los dos identificadores del thread.
const Separator = "_"

// idEscaper vuelve inyectiva la concatenación: ningún id escapado contiene "_".
// "/" y ":" también se escapan porque el id termina en claves de store y rutas.
var idEscaper = strings.NewReplacer(
	"%", "%25",
	"_", "%5F",
	"/", "%2F",
	":", "%3A",
)

// ThreadID deriva el id determinístico y simétrico de la conversación entre a y b.
//
//	ThreadID("b@x.com", "a@x.com") == ThreadID("a@x.com", "b@x.com") == "a@x.com_b@x.com"
func ThreadID(a, b string) (string, error) {
	a, b = identity.NormalizeID(a), identity.NormalizeID(b)
	if a == "" || b == "" {
		return "", apperr.Invalid("both participants are required", "participants")
	}
	if a == b {
		return "", apperr.Invalid("cannot open a thread with yourself", "participants")
	}

	ids := []string{a, b}
	sort.Strings(ids)
	return idEscaper.Replace(ids[0]) + Separator + idEscaper.Replace(ids[1]), nil
}
