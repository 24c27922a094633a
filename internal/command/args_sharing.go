package command

import "net/mail"

var collaboratorRoles = []string{"CREATOR", "ADMIN", "READ_WRITE", "READ_ONLY"}

// ShareProjectByEmailArgs invites a person to a project by address.
type ShareProjectByEmailArgs struct {
	sealed
	ProjectID string  `json:"project_id"`
	Email     string  `json:"email"`
	Role      *string `json:"role,omitempty"`
}

func (ShareProjectByEmailArgs) Command() Type   { return ShareProject }
func (ShareProjectByEmailArgs) Variant() string { return VariantEmail }

func (a ShareProjectByEmailArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	c.email("email", a.Email)
	c.oneOf("role", a.Role, collaboratorRoles...)
	return c.err(ShareProject)
}

// ShareProjectWithUserArgs shares a project with a known collaborator.
type ShareProjectWithUserArgs struct {
	sealed
	ProjectID string  `json:"project_id"`
	UserID    string  `json:"user_id"`
	Role      *string `json:"role,omitempty"`
}

func (ShareProjectWithUserArgs) Command() Type   { return ShareProject }
func (ShareProjectWithUserArgs) Variant() string { return VariantUser }

func (a ShareProjectWithUserArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	c.required("user_id", a.UserID)
	c.oneOf("role", a.Role, collaboratorRoles...)
	return c.err(ShareProject)
}

// DeleteCollaboratorArgs removes a person from a shared project.
type DeleteCollaboratorArgs struct {
	sealed
	ProjectID string `json:"project_id"`
	Email     string `json:"email"`
}

func (DeleteCollaboratorArgs) Command() Type { return DeleteCollaborator }

func (a DeleteCollaboratorArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	c.email("email", a.Email)
	return c.err(DeleteCollaborator)
}

// AcceptInvitationArgs accepts a project invitation.
type AcceptInvitationArgs struct {
	sealed
	InvitationID     string `json:"invitation_id"`
	InvitationSecret string `json:"invitation_secret"`
}

func (AcceptInvitationArgs) Command() Type { return AcceptInvitation }

func (a AcceptInvitationArgs) Validate() error {
	var c checker
	c.required("invitation_id", a.InvitationID)
	c.required("invitation_secret", a.InvitationSecret)
	return c.err(AcceptInvitation)
}

// RejectInvitationArgs rejects a project invitation.
type RejectInvitationArgs struct {
	sealed
	InvitationID     string `json:"invitation_id"`
	InvitationSecret string `json:"invitation_secret"`
}

func (RejectInvitationArgs) Command() Type { return RejectInvitation }

func (a RejectInvitationArgs) Validate() error {
	var c checker
	c.required("invitation_id", a.InvitationID)
	c.required("invitation_secret", a.InvitationSecret)
	return c.err(RejectInvitation)
}

// DeleteInvitationArgs withdraws an invitation sent by the user.
type DeleteInvitationArgs struct {
	sealed
	InvitationID string `json:"invitation_id"`
}

func (DeleteInvitationArgs) Command() Type { return DeleteInvitation }

func (a DeleteInvitationArgs) Validate() error {
	var c checker
	c.required("invitation_id", a.InvitationID)
	return c.err(DeleteInvitation)
}

func (c *checker) email(field, v string) {
	if v == "" {
		c.fail(field, "required")
		return
	}
	if _, err := mail.ParseAddress(v); err != nil {
		c.fail(field, "must be an email address")
	}
}
