package discord

import "github.com/bwmarrin/discordgo"

// isAdmin: owner del guild, bit Administrator, o alguno de los roles
// configurados en ADMIN_ROLE_IDS. No responde nada; el caller decide.
func (r *Router) isAdmin(s *discordgo.Session, ic *discordgo.InteractionCreate) bool {
	if g, _ := s.State.Guild(ic.GuildID); g != nil && ic.Member.User.ID == g.OwnerID {
		return true
	}

	roles, _ := s.GuildRoles(ic.GuildID)
	var perms int64
outer:
	for _, rid := range ic.Member.Roles {
		for _, ro := range roles {
			if ro.ID == rid {
				perms |= ro.Permissions
				if (perms & discordgo.PermissionAdministrator) != 0 {
					break outer
				}
			}
		}
	}
	if (perms & discordgo.PermissionAdministrator) != 0 {
		return true
	}

	if len(r.adminRoleIDs) > 0 {
		has := make(map[string]struct{}, len(ic.Member.Roles))
		for _, rid := range ic.Member.Roles {
			has[rid] = struct{}{}
		}
		for _, want := range r.adminRoleIDs {
			if _, ok := has[want]; ok {
				return true
			}
		}
	}
	return false
}

func (r *Router) requireAdmin(s *discordgo.Session, ic *discordgo.InteractionCreate) bool {
	if r.isAdmin(s, ic) {
		return true
	}
	ReplyEphemeral(s, ic, "🔒 No tienes permisos para esta acción.")
	return false
}
