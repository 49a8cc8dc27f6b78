package api

// CastEntity is implemented by the cast types of every API version.
type CastEntity interface {
	CastHash() string
}

// CastRef identifies a cast either by a previously fetched cast or by its
// bare hash. Build it with CastByHash or CastByEntity.
type CastRef struct {
	entity CastEntity
	hash   string
}

// CastByHash references a cast by its hash, used verbatim.
func CastByHash(hash string) CastRef {
	return CastRef{hash: hash}
}

// CastByEntity references a cast by a previously fetched cast.
func CastByEntity(cast CastEntity) CastRef {
	return CastRef{entity: cast}
}

// Hash returns the hash of the referenced cast. It returns the hash field of
// the entity when built with CastByEntity, or the bare hash otherwise.
func (r CastRef) Hash() string {
	if r.entity != nil {
		return r.entity.CastHash()
	}
	return r.hash
}
