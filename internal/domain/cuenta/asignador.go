// Package cuenta implementa la asignación de logins secuenciales del esquema
// empleadoN para cuentas provisionadas junto con un empleado.
package cuenta

import (
	"fmt"
	"regexp"
	"strconv"
)

// Prefijo del esquema de nombres generados.
const Prefijo = "empleado"

var patronLogin = regexp.MustCompile(`^empleado(\d+)$`)

// EsGenerado indica si un login pertenece al esquema empleadoN. Los logins
// generados son inmutables; los manuales pueden renombrarse.
func EsGenerado(login string) bool {
	return patronLogin.MatchString(login)
}

// Siguiente calcula el próximo login libre: max(N)+1 sobre los logins
// existentes que coinciden con empleadoN, empezando en empleado1 si ninguno
// coincide. Los logins arbitrarios se ignoran.
//
// Dos llamadas concurrentes sobre el mismo snapshot pueden calcular el mismo N;
// el índice único de usuarios en la base es la red de seguridad y el caso de
// uso reintenta ante el duplicado.
func Siguiente(existentes []string) string {
	maxN := 0
	for _, login := range existentes {
		m := patronLogin.FindStringSubmatch(login)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > maxN {
			maxN = n
		}
	}
	return fmt.Sprintf("%s%d", Prefijo, maxN+1)
}
