package uploads

import (
	"sync"
	"time"

	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

// sessao retém as linhas parseadas de um arquivo entre a recepção e a
// importação efetiva, evitando reprocessar a planilha a cada tentativa.
type sessao struct {
	empresaID string
	headers   []string
	rows      []importacao.RawRow
	criadoEm  time.Time
}

// SessionStore guarda em memória as linhas de uploads ainda não importados.
// Um novo upload da mesma empresa substitui a sessão anterior; sessões
// expiram após o TTL e a importação passa a exigir novo envio do arquivo.
type SessionStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	porUpload  map[string]*sessao
	porEmpresa map[string]string

	now func() time.Time
}

// NewSessionStore constrói o store com o tempo de retenção dado.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:        ttl,
		porUpload:  make(map[string]*sessao),
		porEmpresa: make(map[string]string),
		now:        time.Now,
	}
}

// Guardar registra a sessão de um upload recém-recebido, descartando a sessão
// anterior da mesma empresa, se houver.
func (s *SessionStore) Guardar(empresaID, uploadID string, headers []string, rows []importacao.RawRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if anterior, ok := s.porEmpresa[empresaID]; ok {
		delete(s.porUpload, anterior)
	}
	s.porUpload[uploadID] = &sessao{
		empresaID: empresaID,
		headers:   headers,
		rows:      rows,
		criadoEm:  s.now(),
	}
	s.porEmpresa[empresaID] = uploadID
}

// Obter devolve as linhas retidas de um upload, ou false quando a sessão não
// existe ou já expirou.
func (s *SessionStore) Obter(uploadID string) ([]string, []importacao.RawRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.porUpload[uploadID]
	if !ok {
		return nil, nil, false
	}
	if s.ttl > 0 && s.now().Sub(sess.criadoEm) > s.ttl {
		delete(s.porUpload, uploadID)
		if s.porEmpresa[sess.empresaID] == uploadID {
			delete(s.porEmpresa, sess.empresaID)
		}
		return nil, nil, false
	}
	return sess.headers, sess.rows, true
}

// Remover descarta a sessão de um upload.
func (s *SessionStore) Remover(uploadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.porUpload[uploadID]
	if !ok {
		return
	}
	delete(s.porUpload, uploadID)
	if s.porEmpresa[sess.empresaID] == uploadID {
		delete(s.porEmpresa, sess.empresaID)
	}
}
