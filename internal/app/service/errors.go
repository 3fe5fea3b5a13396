package service

import "errors"

// Violaciones de reglas de negocio. El dispatcher las traduce una a una
// a mensajes concretos; nunca a un error genérico.
var (
	ErrUnknownPlayer = errors.New("epic account not found")
	ErrNotRegistered = errors.New("user not registered")

	ErrBadSquadName       = errors.New("squad name must be 3-20 characters")
	ErrDuplicateName      = errors.New("squad name already taken in this server")
	ErrDuplicateOwnership = errors.New("user already owns a squad in this server")
	ErrSquadNotFound      = errors.New("no such squad in this server")
	ErrAlreadyInSquad     = errors.New("user already belongs to a squad in this server")
	ErrSquadFull          = errors.New("squad is full")
	ErrNotInSquad         = errors.New("user is not in a squad in this server")
	ErrOwnerMustResolve   = errors.New("owner must transfer or delete the squad first")
	ErrNotOwner           = errors.New("only the squad owner can do that")
	ErrNotAMember         = errors.New("target user is not a member of the squad")
)

// MaxSquadMembers: capacidad fija de un squad.
const MaxSquadMembers = 4
