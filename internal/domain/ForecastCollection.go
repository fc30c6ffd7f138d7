package domain

// ForecastCollection guarda as tabelas de previsão por identificador de
// execução, preservando a ordem de inserção pelo mesmo motivo do CatalogStore.
type ForecastCollection struct {
	runIDs []string
	tables map[string]*ForecastTable
}

func NewForecastCollection() *ForecastCollection {
	return &ForecastCollection{
		tables: make(map[string]*ForecastTable),
	}
}

func (c *ForecastCollection) Put(runID string, table *ForecastTable) {
	if _, exists := c.tables[runID]; !exists {
		c.runIDs = append(c.runIDs, runID)
	}
	c.tables[runID] = table
}

func (c *ForecastCollection) Get(runID string) *ForecastTable {
	return c.tables[runID]
}

func (c *ForecastCollection) Len() int {
	return len(c.runIDs)
}

// Each itera as tabelas em ordem de inserção; fn retorna false para interromper
func (c *ForecastCollection) Each(fn func(runID string, table *ForecastTable) bool) {
	for _, runID := range c.runIDs {
		if !fn(runID, c.tables[runID]) {
			return
		}
	}
}
