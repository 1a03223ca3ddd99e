package api

const (
	metricRequests           = "Requests"
	metricResponses2xx       = "Responses2xx"
	metricResponses4xx       = "Responses4xx"
	metricResponses5xx       = "Responses5xx"
	metricAccountsRegistered = "AccountsRegistered"
	metricLoginsSucceeded    = "LoginsSucceeded"
	metricLoginsFailed       = "LoginsFailed"
	metricMessagesCreated    = "MessagesCreated"
	metricMessagesUpdated    = "MessagesUpdated"
	metricMessagesDeleted    = "MessagesDeleted"
)

var metricNames = []string{
	metricRequests,
	metricResponses2xx,
	metricResponses4xx,
	metricResponses5xx,
	metricAccountsRegistered,
	metricLoginsSucceeded,
	metricLoginsFailed,
	metricMessagesCreated,
	metricMessagesUpdated,
	metricMessagesDeleted,
}
