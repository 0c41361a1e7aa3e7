// Package summary provides the fixed architecture recap text printed after
// generation. The blocks are pure functions of hard-coded strings, so output
// is byte-stable across runs.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/utkloud/archdiagrams/pkg/topology"
)

const rule = "============================================================"

// threeTier is the recap for the IIS + SQL 3-tier demo.
var threeTier = strings.Join([]string{
	rule,
	"BICEP DEMO ARCHITECTURE SUMMARY",
	rule,
	"",
	"Architecture Overview:",
	"  - 3-Tier Web Application (IIS + SQL Server)",
	"  - Resource Group Scoped Deployment",
	"",
	"Networking:",
	"  - VNet: cust1Vnet (10.0.0.0/16)",
	"  - Frontend Subnet: 10.0.0.0/24",
	"  - Database Subnet: 10.0.2.0/24",
	"  - NSG Rules: HTTP(80) allowed to frontend, SQL(1433) from frontend to DB",
	"",
	"Web Tier:",
	"  - Load Balancer: cust1webSrvlb with public IP",
	"  - Availability Set: 2 fault domains, 20 update domains",
	"  - 2x IIS VMs: Windows Server 2022 (Standard_D2s_v3)",
	"  - Health Probe: TCP port 80",
	"",
	"Database Tier:",
	"  - 1x SQL Server 2022 Standard VM (Standard_D4s_v3)",
	"  - Managed Disks: Premium_LRS",
	"  - Public IP for management access",
	"  - Outbound internet traffic blocked",
	"",
	"Security:",
	"  - Frontend NSG: Allows HTTP/80 from Internet",
	"  - Database NSG: Allows SQL/1433 from Frontend only",
	"  - Database NSG: Blocks all internet outbound",
	"",
	"Generated files:",
	"  - diagrams/bicep_iis_sql_3tier.png",
	"  - diagrams/bicep_iis_sql_3tier.dot",
	"  - diagrams/bicep_iis_sql_3tier.drawio",
	rule,
}, "\n")

// contoso is the recap for the Contoso Medical Portal.
var contoso = strings.Join([]string{
	rule,
	"CONTOSO MEDICAL PORTAL SUMMARY",
	rule,
	"",
	"Architecture Overview:",
	"  - Front Door -> App Gateway (WAF) -> Web App entry chain",
	"  - Backend API and Function App with Service Bus messaging",
	"  - Private data tier: SQL, Storage, Key Vault",
	"  - Forced egress through Azure Firewall",
	"  - Log Analytics and App Insights monitoring",
	"",
	"Networking:",
	"  - VNet: vnet-contoso-auea-001 (10.10.0.0/16)",
	"  - Frontend Subnet: 10.10.1.0/24",
	"  - Backend Subnet: 10.10.2.0/24",
	"  - Data Subnet: 10.10.3.0/24",
	"",
	"Generated files:",
	"  - diagrams/contoso_architecture.png",
	"  - diagrams/contoso_architecture.dot",
	"  - diagrams/contoso_architecture.drawio",
	rule,
}, "\n")

var blocks = map[string]string{
	topology.ThreeTierName: threeTier,
	topology.ContosoName:   contoso,
}

// For returns the recap block for the named topology.
func For(name string) (string, error) {
	s, ok := blocks[name]
	if !ok {
		return "", fmt.Errorf("no summary for topology: %s", name)
	}
	return s, nil
}

// Fprint writes the recap for the named topology to w, followed by a
// trailing newline.
func Fprint(w io.Writer, name string) error {
	s, err := For(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
