package domain

// CatalogStore guarda os registros históricos por número de item, preservando
// a ordem de inserção. A ordem de iteração faz parte do contrato: a resolução
// por nome usa a política de primeiro match e precisa ser determinística.
type CatalogStore struct {
	itemNumbers []string
	items       map[string]*ItemRecord
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		items: make(map[string]*ItemRecord),
	}
}

// Put adiciona ou substitui um registro. Substituições mantêm a posição original.
func (s *CatalogStore) Put(itemNumber string, record *ItemRecord) {
	if _, exists := s.items[itemNumber]; !exists {
		s.itemNumbers = append(s.itemNumbers, itemNumber)
	}
	s.items[itemNumber] = record
}

func (s *CatalogStore) Get(itemNumber string) *ItemRecord {
	return s.items[itemNumber]
}

func (s *CatalogStore) Len() int {
	return len(s.itemNumbers)
}

// Each itera os registros em ordem de inserção; fn retorna false para interromper
func (s *CatalogStore) Each(fn func(itemNumber string, record *ItemRecord) bool) {
	for _, itemNumber := range s.itemNumbers {
		if !fn(itemNumber, s.items[itemNumber]) {
			return
		}
	}
}
