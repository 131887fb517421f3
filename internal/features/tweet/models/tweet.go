package models

// Tweet is the stored tweet document. The identifier is assigned by the
// store at creation and is monotonically increasing, so descending id order
// is reverse-chronological order.
type Tweet struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Tweet    string `json:"tweet"`
}

// TweetRequest is the payload for creating or updating a tweet.
type TweetRequest struct {
	Username string `json:"username"`
	Tweet    string `json:"tweet"`
}

// FeedEntry is a tweet enriched with its author's avatar. Avatar is null
// when no user exists under the tweet's username.
type FeedEntry struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Tweet    string  `json:"tweet"`
	Avatar   *string `json:"avatar"`
}
