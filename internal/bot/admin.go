package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// handleAdminCommand manages the user whitelist:
// /admin users add|remove <id>, /admin users list.
// Called with the session mutex held.
func (b *Bot) handleAdminCommand(session *UserSession, args []string) {
	// Whitelist check already passed; still restrict to the admin.
	if b.adminID == 0 || session.userId != b.adminID {
		return // silent drop
	}

	if len(args) < 2 || args[0] != "users" {
		session.reply(MsgAdminUsage)
		return
	}

	switch args[1] {
	case "add":
		userID, ok := parseAdminUserID(session, args[2:])
		if !ok {
			return
		}
		if err := b.store.AddAllowedUser(userID, session.userId); err != nil {
			session.replyWithError(err)
			return
		}
		session.reply(MsgAdminUserAdded, userID)

	case "remove":
		userID, ok := parseAdminUserID(session, args[2:])
		if !ok {
			return
		}
		if err := b.store.RemoveAllowedUser(userID); err != nil {
			session.replyWithError(err)
			return
		}
		session.reply(MsgAdminUserRemoved, userID)

	case "list":
		users, err := b.store.GetAllowedUsers()
		if err != nil {
			session.replyWithError(err)
			return
		}
		if len(users) == 0 {
			session.reply(MsgAdminNoUsers)
			return
		}
		var sb strings.Builder
		sb.WriteString(MsgAdminAllowedUsers)
		for _, u := range users {
			fmt.Fprintf(&sb, "• %d (เพิ่มเมื่อ %s)\n", u.TelegramID, u.AddedAt.Format("2006-01-02"))
		}
		session.reply(strings.TrimRight(sb.String(), "\n"))

	default:
		session.reply(MsgAdminUsage)
	}
}

func parseAdminUserID(session *UserSession, args []string) (int64, bool) {
	if len(args) < 1 {
		session.reply(MsgAdminUsage)
		return 0, false
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		session.reply(MsgAdminUserInvalidID)
		return 0, false
	}
	return userID, true
}
