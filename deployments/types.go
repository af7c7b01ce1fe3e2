package deployments

import "time"

// Deployment status values reported by AI Core.
const (
	StatusRunning = "RUNNING"
	StatusStopped = "STOPPED"
	StatusPending = "PENDING"
	StatusDead    = "DEAD"
)

// Deployment describes one model deployment as returned by the AI Core
// deployment listing endpoint.
type Deployment struct {
	ID                string    `json:"id"`
	ConfigurationName string    `json:"configurationName"`
	Status            string    `json:"status"`
	TargetStatus      string    `json:"targetStatus,omitempty"`
	ScenarioID        string    `json:"scenarioId"`
	DeploymentURL     string    `json:"deploymentUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	ModifiedAt        time.Time `json:"modifiedAt"`
}

// Running reports whether the deployment is currently serving requests.
func (d Deployment) Running() bool {
	return d.Status == StatusRunning
}

// listResponse is the wire shape of GET /v2/lm/deployments.
type listResponse struct {
	Count     int          `json:"count"`
	Resources []Deployment `json:"resources"`
}
