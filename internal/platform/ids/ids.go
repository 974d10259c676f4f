package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Length es el largo de los identificadores de entidades.
const Length = 8

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New genera un identificador corto alfanumérico (base36, minúsculas).
// La entropía viene de un uuid v4, no de math/rand.
func New() string {
	u := uuid.New()

	var sb strings.Builder
	sb.Grow(Length)
	for i := 0; i < Length; i++ {
		// dos bytes por caracter para reducir el sesgo del módulo
		v := int(u[2*i])<<8 | int(u[2*i+1])
		sb.WriteByte(alphabet[v%len(alphabet)])
	}
	return sb.String()
}
