package identifier

// Kind tags a raw lookup value with the identifier family it belongs to.
type Kind string

const (
	KindDomain   Kind = "domain"
	KindEmail    Kind = "email"
	KindLinkedin Kind = "linkedin"
	KindPlaceID  Kind = "place_id"
	KindGoogleID Kind = "google_id"
)

// Canonical is the normalized form of one raw identifier. It is only ever
// produced by Normalize, so holding a Canonical means the value passed its
// kind's validation.
type Canonical struct {
	Kind  Kind
	Value string
}
