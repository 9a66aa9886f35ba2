// Package pltype has the message type URIs of the Aries protocols this module
// speaks.
package pltype

// Prefixes
const (
	Aries     = "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec" // This will be for all Aries protocols
	DIFPrefix = "https://didcomm.org"
)

// DID exchange aka Connection related constants
const (
	ProtocolConnection = "connections"
	HandlerInvitation  = "invitation"
	HandlerRequest     = "request"
	HandlerResponse    = "response"
	HandlerProblem     = "problem_report"

	Connection              = Aries + "/" + ProtocolConnection
	ConnectionInvitation    = Connection + "/1.0/" + HandlerInvitation
	ConnectionRequest       = Connection + "/1.0/" + HandlerRequest
	ConnectionResponse      = Connection + "/1.0/" + HandlerResponse
	ConnectionProblemReport = Connection + "/1.0/" + HandlerProblem

	ConnectionSignature = Aries + "/signature/1.0/ed25519Sha512_single"
)

// Notification protocol constants
const (
	ProtocolNotification       = "notification"
	HandlerAck                 = "ack"
	Notification               = Aries + "/" + ProtocolNotification
	NotificationAck            = Notification + "/1.0/" + HandlerAck
	ProtocolReportProblem      = "report-problem"
	ReportProblem              = Aries + "/" + ProtocolReportProblem
	HandlerProblemReport       = "problem-report"
	ReportProblemProblemReport = ReportProblem + "/1.0/" + HandlerProblemReport
)

// Trust ping protocol constants
const (
	ProtocolTrustPing   = "trust_ping"
	HandlerPing         = "ping"
	HandlerPingResponse = "ping_response"
	TrustPing           = Aries + "/" + ProtocolTrustPing
	TrustPingPing       = TrustPing + "/1.0/" + HandlerPing
	TrustPingResponse   = TrustPing + "/1.0/" + HandlerPingResponse
)

// Discover features protocol constants
const (
	ProtocolDiscoverFeatures = "discover-features"
	HandlerQuery             = "query"
	HandlerDisclose          = "disclose"
	DiscoverFeatures         = Aries + "/" + ProtocolDiscoverFeatures
	DiscoverFeaturesQuery    = DiscoverFeatures + "/1.0/" + HandlerQuery
	DiscoverFeaturesDisclose = DiscoverFeatures + "/1.0/" + HandlerDisclose
)

// Basic message protocol constants
const (
	ProtocolBasicMessage = "basicmessage"
	HandlerMessage       = "message"
	BasicMessage         = Aries + "/" + ProtocolBasicMessage
	BasicMessageSend     = BasicMessage + "/1.0/" + HandlerMessage
)

// Routing protocol constants
const (
	ProtocolRouting = "routing"
	HandlerForward  = "forward"
	Routing         = Aries + "/" + ProtocolRouting
	RoutingForward  = Routing + "/1.0/" + HandlerForward
)

// Issue Credential protocol constants
const (
	ProtocolIssueCredential          = "issue-credential"
	HandlerIssueCredentialOffer      = "offer-credential"
	HandlerIssueCredentialRequest    = "request-credential"
	HandlerIssueCredentialIssue      = "issue-credential"
	HandlerIssueCredentialACK        = "ack"
	HandlerIssueCredentialProblem    = "problem-report"
	ObjectTypeCredentialPreview      = "credential-preview"
	IssueCredential                  = Aries + "/" + ProtocolIssueCredential
	IssueCredentialOffer             = IssueCredential + "/1.0/" + HandlerIssueCredentialOffer
	IssueCredentialRequest           = IssueCredential + "/1.0/" + HandlerIssueCredentialRequest
	IssueCredentialIssue             = IssueCredential + "/1.0/" + HandlerIssueCredentialIssue
	IssueCredentialACK               = IssueCredential + "/1.0/" + HandlerIssueCredentialACK
	IssueCredentialProblemReport     = IssueCredential + "/1.0/" + HandlerIssueCredentialProblem
	IssueCredentialCredentialPreview = IssueCredential + "/1.0/" + ObjectTypeCredentialPreview

	LibindyCredOfferID   = "libindy-cred-offer-0"
	LibindyCredRequestID = "libindy-cred-request-0"
	LibindyCredentialID  = "libindy-cred-0"
)

// Present proof protocol constants
const (
	ProtocolPresentProof            = "present-proof"
	HandlerPresentProofRequest      = "request-presentation"
	HandlerPresentProofPresentation = "presentation"
	HandlerPresentProofACK          = "ack"
	HandlerPresentProofProblem      = "problem-report"
	PresentProof                    = Aries + "/" + ProtocolPresentProof
	PresentProofRequest             = PresentProof + "/1.0/" + HandlerPresentProofRequest
	PresentProofPresentation        = PresentProof + "/1.0/" + HandlerPresentProofPresentation
	PresentProofACK                 = PresentProof + "/1.0/" + HandlerPresentProofACK
	PresentProofProblemReport       = PresentProof + "/1.0/" + HandlerPresentProofProblem

	LibindyRequestPresentationID = "libindy-request-presentation-0"
	LibindyPresentationID        = "libindy-presentation-0"
)

// Family returns the protocol family URI with its version, i.e. the message
// type without the message name. Empty if the type is not well formed.
func Family(msgType string) string {
	for i := len(msgType) - 1; i >= 0; i-- {
		if msgType[i] == '/' {
			return msgType[:i]
		}
	}
	return ""
}
