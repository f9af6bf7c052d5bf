package domain

import "sort"

// Position - должность сотрудника из фиксированного справочника
type Position string

// Справочник должностей. Фиксируется при деплое и не редактируется
// во время работы.
const (
	PositionTinker            Position = "tinker"
	PositionCarInternalWorker Position = "car internal worker"
	PositionCarExternalWorker Position = "car external worker"
	PositionManager           Position = "manager"
	PositionAccountant        Position = "accountant"
)

// roleBaseSalary - соответствие должности и месячного оклада.
// Используется только при создании сотрудника для фиксации base_salary.
var roleBaseSalary = map[Position]float64{
	PositionTinker:            20000,
	PositionCarInternalWorker: 25000,
	PositionCarExternalWorker: 27000,
	PositionManager:           45000,
	PositionAccountant:        40000,
}

// BaseSalaryFor возвращает оклад для должности и признак того,
// что должность известна
func BaseSalaryFor(p Position) (float64, bool) {
	salary, ok := roleBaseSalary[p]
	return salary, ok
}

// Positions возвращает все известные должности в алфавитном порядке
func Positions() []Position {
	positions := make([]Position, 0, len(roleBaseSalary))
	for p := range roleBaseSalary {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
	return positions
}
