// internal/types/types.go
package types

// EntityID — уникальный монотонно растущий идентификатор сущности.
type EntityID uint64
