package ecs

// EntityID identifies a live entity. There is no per-entity object: the id
// is the entity. Ids come from a LIFO free stack and are reused immediately
// after deletion, so an EntityID held across a Delete of that entity is
// dangling.
type EntityID uint32
