package model

// Relation is one membership edge between a repository and a group.
// It has no identity beyond the (RepositoryID, GroupName) pair; duplicate
// pairs are not allowed in a store.
type Relation struct {
	RepositoryID string `json:"id" yaml:"id"`
	GroupName    string `json:"group" yaml:"group"`
}

// NewRelation builds a relation edge.
func NewRelation(repositoryID, groupName string) Relation {
	return Relation{RepositoryID: repositoryID, GroupName: groupName}
}
