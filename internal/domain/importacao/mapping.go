package importacao

import (
	"fmt"
	"sort"
	"strings"
)

// aliasIndex apelido maiúsculo -> campo canônico. A iteração segue a ordem do
// catálogo para que a sugestão seja determinística quando dois campos
// compartilhassem um apelido (não deveria ocorrer, mas o índice protege).
var aliasIndex = func() map[string]string {
	m := make(map[string]string)
	for _, f := range Catalog {
		for _, alias := range AliasTable[f.Field] {
			key := strings.ToUpper(alias)
			if _, exists := m[key]; !exists {
				m[key] = f.Field
			}
		}
	}
	return m
}()

// SuggestMappings monta o mapeamento sugerido de cabeçalhos detectados no
// arquivo para campos canônicos. A comparação é igualdade exata (não
// substring), insensível a caixa. Cabeçalhos sem apelido correspondente ficam
// fora do mapa (não mapeados).
func SuggestMappings(headers []string) map[string]string {
	mapping := make(map[string]string)
	for _, h := range headers {
		key := strings.ToUpper(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if field, ok := aliasIndex[key]; ok {
			mapping[h] = field
		}
	}
	return mapping
}

// ValidateMappings verifica a cobertura de campos obrigatórios e alvos
// duplicados. Devolve a lista vazia quando válido; qualquer entrada bloqueia a
// aplicação do mapeamento. O usuário pode reatribuir cabeçalhos livremente; a
// validação nunca corrige sozinha.
func ValidateMappings(mapping map[string]string) []string {
	var errs []string

	targets := make(map[string]int)
	for _, field := range mapping {
		targets[field]++
	}

	for _, f := range RequiredFields() {
		if targets[f.Field] == 0 {
			errs = append(errs, fmt.Sprintf("Campo obrigatório '%s' não foi mapeado", f.Label))
		}
	}

	var duplicados []string
	for field, count := range targets {
		if count > 1 {
			duplicados = append(duplicados, field)
		}
	}
	if len(duplicados) > 0 {
		sort.Strings(duplicados)
		errs = append(errs, "Existem mapeamentos duplicados: "+strings.Join(duplicados, ", "))
	}

	return errs
}
