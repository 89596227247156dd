package notification

import (
	"fmt"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	subforummodels "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
)

// Notifier builds and delivers the two workflow emails: the account
// activation link to the new user and the subforum approval link to the
// admin inbox. Failures are logged and swallowed; a dropped email must
// never fail the request that triggered it.
type Notifier struct {
	mailer Mailer
	tokens *tokens.Generator
	config config.Config
	logger logger.Logger
}

func NewNotifier(mailer Mailer, tokens *tokens.Generator, config config.Config, logger logger.Logger) *Notifier {
	return &Notifier{mailer: mailer, tokens: tokens, config: config, logger: logger}
}

func (n *Notifier) SendVerification(user *identitymodels.User) {
	uidb64 := tokens.EncodeID(user.ID.String())
	token := n.tokens.Make(user.ID.String(), user.TokenFingerprint())
	link := fmt.Sprintf("%s/activate/%s/%s", n.config.Server.BaseURL, uidb64, token)

	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to the WSU Forum. Confirm your email address to activate your account:\n\n%s\n\nIf you did not sign up, ignore this message.\n",
		user.Username, link)

	if err := n.mailer.Send(user.Email, "Activate your WSU Forum account", body); err != nil {
		n.logger.Error("failed to send verification email", "user_id", user.ID, "err", err)
	}
}

func (n *Notifier) SendSubforumPending(sf *subforummodels.Subforum) {
	uidb64 := tokens.EncodeID(sf.ID.String())
	token := n.tokens.Make(sf.ID.String(), sf.TokenFingerprint())
	link := fmt.Sprintf("%s/subforums/activate/%s/%s", n.config.Server.BaseURL, uidb64, token)

	body := fmt.Sprintf(
		"A new subforum is awaiting review.\n\nName: %s\nDescription: %s\n\nApprove it here:\n\n%s\n",
		sf.Name, sf.Description, link)

	if err := n.mailer.Send(n.config.Mail.AdminRecipient, "Subforum pending approval: "+sf.Name, body); err != nil {
		n.logger.Error("failed to send subforum approval email", "subforum_id", sf.ID, "err", err)
	}
}
