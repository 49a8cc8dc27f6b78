package v2

// ReactionType is the kind of a reaction to a cast.
type ReactionType string

const (
	ReactionLike   ReactionType = "like"
	ReactionRecast ReactionType = "recast"
)

// CastParamType tells the cast lookup how to interpret the identifier.
type CastParamType string

const (
	CastParamHash CastParamType = "hash"
	CastParamURL  CastParamType = "url"
)

// FeedType selects the feed source.
type FeedType string

const (
	FeedFollowing FeedType = "following"
	FeedFilter    FeedType = "filter"
)

// FilterType selects the feed filter when the feed type is FeedFilter.
type FilterType string

const (
	FilterFIDs           FilterType = "fids"
	FilterParentURL      FilterType = "parent_url"
	FilterGlobalTrending FilterType = "global_trending"
)

// SignerStatus is the approval status of a signer.
type SignerStatus string

const (
	SignerGenerated       SignerStatus = "generated"
	SignerPendingApproval SignerStatus = "pending_approval"
	SignerApproved        SignerStatus = "approved"
	SignerRevoked         SignerStatus = "revoked"
)

// Next holds the cursor to request the following page of a list.
type Next struct {
	Cursor *string `json:"cursor"`
}

type Signer struct {
	SignerUUID        string       `json:"signer_uuid"`
	PublicKey         string       `json:"public_key"`
	Status            SignerStatus `json:"status"`
	SignerApprovalURL string       `json:"signer_approval_url,omitempty"`
	FID               uint64       `json:"fid,omitempty"`
}

type Bio struct {
	Text string `json:"text"`
}

type Profile struct {
	Bio Bio `json:"bio"`
}

type VerifiedAddresses struct {
	EthAddresses []string `json:"eth_addresses"`
	SolAddresses []string `json:"sol_addresses"`
}

type UserViewerContext struct {
	Following  bool `json:"following"`
	FollowedBy bool `json:"followed_by"`
}

type User struct {
	Object            string             `json:"object"`
	FID               uint64             `json:"fid"`
	Username          string             `json:"username"`
	DisplayName       string             `json:"display_name"`
	CustodyAddress    string             `json:"custody_address"`
	PfpURL            string             `json:"pfp_url"`
	Profile           Profile            `json:"profile"`
	FollowerCount     uint64             `json:"follower_count"`
	FollowingCount    uint64             `json:"following_count"`
	Verifications     []string           `json:"verifications"`
	VerifiedAddresses VerifiedAddresses  `json:"verified_addresses"`
	ActiveStatus      string             `json:"active_status"`
	ViewerContext     *UserViewerContext `json:"viewer_context,omitempty"`
}

// EmbeddedCast is an embed of a cast, either an url or another cast.
type EmbeddedCast struct {
	URL    string  `json:"url,omitempty"`
	CastID *CastID `json:"cast_id,omitempty"`
}

type CastID struct {
	FID  uint64 `json:"fid"`
	Hash string `json:"hash"`
}

type CastAuthor struct {
	FID uint64 `json:"fid"`
}

type ReactionUser struct {
	FID   uint64 `json:"fid"`
	FName string `json:"fname"`
}

type CastReactions struct {
	LikesCount   uint64         `json:"likes_count"`
	RecastsCount uint64         `json:"recasts_count"`
	Likes        []ReactionUser `json:"likes"`
	Recasts      []ReactionUser `json:"recasts"`
}

type CastReplies struct {
	Count uint64 `json:"count"`
}

type CastViewerContext struct {
	Liked    bool `json:"liked"`
	Recasted bool `json:"recasted"`
}

type Cast struct {
	Object        string             `json:"object"`
	Hash          string             `json:"hash"`
	ThreadHash    *string            `json:"thread_hash"`
	ParentHash    *string            `json:"parent_hash"`
	ParentURL     *string            `json:"parent_url"`
	ParentAuthor  CastAuthor         `json:"parent_author"`
	Author        User               `json:"author"`
	Text          string             `json:"text"`
	Timestamp     string             `json:"timestamp"`
	Embeds        []EmbeddedCast     `json:"embeds"`
	Reactions     *CastReactions     `json:"reactions,omitempty"`
	Replies       *CastReplies       `json:"replies,omitempty"`
	ViewerContext *CastViewerContext `json:"viewer_context,omitempty"`
}

// CastHash returns the hash of the cast, it allows to use a cast as an
// api.CastRef.
func (c *Cast) CastHash() string {
	if c == nil {
		return ""
	}
	return c.Hash
}

type CastResponse struct {
	Cast *Cast `json:"cast"`
}

type CastsResult struct {
	Casts []Cast `json:"casts"`
}

type CastsResponse struct {
	Result CastsResult `json:"result"`
}

type PostCastResponseCast struct {
	Hash   string     `json:"hash"`
	Author CastAuthor `json:"author"`
	Text   string     `json:"text"`
}

type PostCastResponse struct {
	Success bool                  `json:"success"`
	Cast    *PostCastResponseCast `json:"cast"`
}

type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FollowResult struct {
	Success   bool   `json:"success"`
	TargetFID uint64 `json:"target_fid"`
	Hash      string `json:"hash"`
}

type BulkFollowResponse struct {
	Success bool           `json:"success"`
	Details []FollowResult `json:"details"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type UserSearchResult struct {
	Users []User `json:"users"`
}

type UserSearchResponse struct {
	Result UserSearchResult `json:"result"`
}

type UserResponse struct {
	User *User `json:"user"`
}

type FeedResponse struct {
	Casts []Cast `json:"casts"`
	Next  Next   `json:"next"`
}

type Notification struct {
	Object              string     `json:"object"`
	MostRecentTimestamp string     `json:"most_recent_timestamp"`
	Type                string     `json:"type"`
	Cast                *Cast      `json:"cast,omitempty"`
	Follows             []Follower `json:"follows,omitempty"`
	Reactions           []Reactor  `json:"reactions,omitempty"`
}

type Follower struct {
	Object string `json:"object"`
	User   User   `json:"user"`
}

type Reactor struct {
	Object string `json:"object"`
	User   User   `json:"user"`
}

type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Next          Next           `json:"next"`
}

type HydratedFollower struct {
	Object string `json:"object"`
	User   *User  `json:"user"`
}

type RelevantFollowersResponse struct {
	TopRelevantFollowersHydrated   []HydratedFollower `json:"top_relevant_followers_hydrated"`
	AllRelevantFollowersDehydrated []HydratedFollower `json:"all_relevant_followers_dehydrated"`
}

type RelevantMint struct {
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id,omitempty"`
	Minter          *User  `json:"minter,omitempty"`
	OwnerAddress    string `json:"owner_address,omitempty"`
	NumTokens       uint64 `json:"num_tokens,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	BlockTimestamp  string `json:"block_timestamp,omitempty"`
}

type RelevantMintsResponse struct {
	RelevantMints []RelevantMint `json:"relevant_mints"`
}

type FrameButton struct {
	Title  string `json:"title"`
	Index  int    `json:"index"`
	Action string `json:"action_type,omitempty"`
}

type FrameInput struct {
	Text string `json:"text"`
}

type FrameAction struct {
	Object       string       `json:"object"`
	Interactor   *User        `json:"interactor,omitempty"`
	TappedButton *FrameButton `json:"tapped_button,omitempty"`
	Input        *FrameInput  `json:"input,omitempty"`
	URL          string       `json:"url"`
	Cast         *Cast        `json:"cast,omitempty"`
}

type ValidateFrameResponse struct {
	Valid  bool         `json:"valid"`
	Action *FrameAction `json:"action,omitempty"`
}
