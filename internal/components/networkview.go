package components

import "droplaser/internal/engine"

// NetworkView marks which participant owns a GameObject in a shared session.
type NetworkView struct {
	engine.BaseComponent
	OwnerID int
	IsMine  bool
}

func NewNetworkView(ownerID int, isMine bool) *NetworkView {
	return &NetworkView{OwnerID: ownerID, IsMine: isMine}
}
