package referrerdto

type CreateReferrerInput struct {
	OwnerID string
	Name    string
	Email   string
	Phone   string
}

type UpdateReferrerInput struct {
	Name  *string
	Email *string
	Phone *string
}
