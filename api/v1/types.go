package v1

// Next holds the cursor to request the following page of a list.
type Next struct {
	Cursor *string `json:"cursor"`
}

type Pfp struct {
	URL string `json:"url"`
}

type MentionedProfile struct {
	FID         uint64 `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type Bio struct {
	Text              string   `json:"text"`
	MentionedProfiles []string `json:"mentionedProfiles"`
}

type Profile struct {
	Bio Bio `json:"bio"`
}

type UserViewerContext struct {
	Following  bool `json:"following"`
	FollowedBy bool `json:"followedBy"`
}

type User struct {
	FID            uint64             `json:"fid"`
	CustodyAddress string             `json:"custodyAddress"`
	Username       string             `json:"username"`
	DisplayName    string             `json:"displayName"`
	Pfp            Pfp                `json:"pfp"`
	Profile        Profile            `json:"profile"`
	FollowerCount  uint64             `json:"followerCount"`
	FollowingCount uint64             `json:"followingCount"`
	Verifications  []string           `json:"verifications"`
	ActiveStatus   string             `json:"activeStatus"`
	ViewerContext  *UserViewerContext `json:"viewerContext,omitempty"`
}

type ParentAuthor struct {
	FID *uint64 `json:"fid"`
}

type Embed struct {
	URL string `json:"url"`
}

type ReactionCount struct {
	Count uint64   `json:"count"`
	FIDs  []uint64 `json:"fids,omitempty"`
}

type Recaster struct {
	FID         uint64 `json:"fid"`
	FName       string `json:"fname"`
	DisplayName string `json:"displayName"`
	RenderURL   string `json:"renderUrl"`
}

type CastViewerContext struct {
	Liked    bool `json:"liked"`
	Recasted bool `json:"recasted"`
}

type Cast struct {
	Hash              string             `json:"hash"`
	ParentHash        *string            `json:"parentHash"`
	ParentURL         *string            `json:"parentUrl"`
	ThreadHash        *string            `json:"threadHash"`
	ParentAuthor      ParentAuthor       `json:"parentAuthor"`
	Author            User               `json:"author"`
	Text              string             `json:"text"`
	Timestamp         string             `json:"timestamp"`
	Embeds            []Embed            `json:"embeds"`
	MentionedProfiles []User             `json:"mentionedProfiles"`
	Reactions         ReactionCount      `json:"reactions"`
	Recasts           ReactionCount      `json:"recasts"`
	Recasters         []string           `json:"recasters"`
	Replies           ReactionCount      `json:"replies"`
	ViewerContext     *CastViewerContext `json:"viewerContext,omitempty"`
}

// CastHash returns the hash of the cast, it allows to use a cast as an
// api.CastRef.
func (c *Cast) CastHash() string {
	if c == nil {
		return ""
	}
	return c.Hash
}

type Reactor struct {
	FID         uint64 `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Pfp         Pfp    `json:"pfp"`
}

// Reaction is a like or a recast over a cast.
type Reaction struct {
	Type      string  `json:"type"`
	Hash      string  `json:"hash"`
	Reactor   Reactor `json:"reactor"`
	Timestamp string  `json:"timestamp"`
	CastHash  string  `json:"castHash"`
}

type CastLike struct {
	Reaction
	Cast Cast `json:"cast"`
}

type Notification struct {
	Hash         string       `json:"hash"`
	ParentHash   *string      `json:"parentHash"`
	ParentURL    *string      `json:"parentUrl"`
	ParentAuthor ParentAuthor `json:"parentAuthor"`
	Author       User         `json:"author"`
	Text         string       `json:"text"`
	Timestamp    string       `json:"timestamp"`
	Embeds       []Embed      `json:"embeds"`
	Type         string       `json:"type"`
	Reactors     []Reactor    `json:"reactors,omitempty"`
	Cast         *Cast        `json:"cast,omitempty"`
}

type UsersResult struct {
	Users []User `json:"users"`
	Next  Next   `json:"next"`
}

// RecentUsersResponse is returned by the recent users list.
type RecentUsersResponse struct {
	Result UsersResult `json:"result"`
}

// FollowResponse is returned by the followers and following lists.
type FollowResponse struct {
	Result UsersResult `json:"result"`
}

// CastRecasterResponse is returned by the recasters list.
type CastRecasterResponse struct {
	Result UsersResult `json:"result"`
}

type UserCastLikeResult struct {
	Likes []CastLike `json:"likes"`
	Next  Next       `json:"next"`
}

type UserCastLikeResponse struct {
	Result UserCastLikeResult `json:"result"`
}

type UserResult struct {
	User *User `json:"user"`
}

type UserResponse struct {
	Result UserResult `json:"result"`
}

type CustodyAddressResult struct {
	FID            uint64 `json:"fid"`
	CustodyAddress string `json:"custodyAddress"`
}

type CustodyAddressResponse struct {
	Result CustodyAddressResult `json:"result"`
}

type CastResult struct {
	Cast *Cast `json:"cast"`
}

type CastResponse struct {
	Result CastResult `json:"result"`
}

type CastsResult struct {
	Casts []Cast `json:"casts"`
	Next  Next   `json:"next"`
}

type CastsResponse struct {
	Result CastsResult `json:"result"`
}

type RecentCastsResponse struct {
	Result CastsResult `json:"result"`
}

type ThreadResult struct {
	Casts []Cast `json:"casts"`
}

type AllCastsInThreadResponse struct {
	Result ThreadResult `json:"result"`
}

type VerificationResponseResult struct {
	FID           uint64   `json:"fid"`
	Username      string   `json:"username"`
	DisplayName   string   `json:"displayName"`
	Verifications []string `json:"verifications"`
}

type VerificationResponse struct {
	Result *VerificationResponseResult `json:"result"`
}

type NotificationsResult struct {
	Notifications []Notification `json:"notifications"`
	Next          Next           `json:"next"`
}

type MentionsAndRepliesResponse struct {
	Result NotificationsResult `json:"result"`
}

type ReactionsAndRecastsResponse struct {
	Result NotificationsResult `json:"result"`
}

type CastLikesResult struct {
	Likes []Reaction `json:"likes"`
	Next  Next       `json:"next"`
}

type CastLikesResponse struct {
	Result CastLikesResult `json:"result"`
}

type CastReactionsResult struct {
	Casts []Reaction `json:"casts"`
	Next  Next       `json:"next"`
}

type CastReactionsResponse struct {
	Result CastReactionsResult `json:"result"`
}
