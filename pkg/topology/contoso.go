package topology

import "github.com/utkloud/archdiagrams/pkg/diagram"

// Contoso builds the Contoso Medical Portal architecture: Front Door in
// front of an application-gateway-fronted web app, a backend API and
// function app with Service Bus messaging, a private data tier, forced
// firewall egress, and a monitoring cluster outside the virtual network.
func Contoso(p Palette) *diagram.Diagram {
	d := diagram.New("Contoso Medical Portal Architecture", "contoso_architecture",
		diagram.WithAttrs(diagram.Attrs{
			"splines":  "ortho",
			"nodesep":  "0.8",
			"ranksep":  "1.2",
			"fontsize": "14",
			"bgcolor":  "white",
			"pad":      "0.5",
			"compound": "true",
		}))

	users := d.Node(diagram.KindUsers, "Users")
	afd := d.Node(diagram.KindFrontDoor, "afd-contoso\n(Azure Front Door)")

	vnet := d.Cluster("vnet-contoso-auea-001\n(10.10.0.0/16)", diagram.VNetClusterAttrs())

	// NSG and route-table nodes are placement-only: they appear inside their
	// subnet clusters but carry no traffic edges.
	frontend := vnet.Cluster("snet-frontend\n(10.10.1.0/24)", diagram.GroupClusterAttrs(p.color(TierFrontend)))
	frontend.Node(diagram.KindNSG, "NSG-Frontend")
	agw := frontend.Node(diagram.KindAppGateway, "agw-contoso\n(WAF)")
	webapp := frontend.Node(diagram.KindAppService, "app-frontend-portal\n(Web App)")

	backend := vnet.Cluster("snet-backend\n(10.10.2.0/24)", diagram.GroupClusterAttrs(p.color(TierBackend)))
	backend.Node(diagram.KindNSG, "NSG-Backend")
	backendAPI := backend.Node(diagram.KindAppService, "app-order-api\n(Backend API)")
	funcApp := backend.Node(diagram.KindFunctionApp, "func-order-processor\n(Function App)")
	serviceBus := backend.Node(diagram.KindServiceBus, "sb-contoso-orders\n(Service Bus)")

	data := vnet.Cluster("snet-data\n(10.10.3.0/24)", diagram.GroupClusterAttrs(p.color(TierData)))
	data.Node(diagram.KindNSG, "NSG-Data")
	sqlServer := data.Node(diagram.KindSQLServer, "sqlsrv-contoso")
	sqlDB := data.Node(diagram.KindSQLDatabase, "sqldb-orders")
	storage := data.Node(diagram.KindStorage, "stcontosodata001")
	keyvault := data.Node(diagram.KindKeyVault, "kv-contoso-prod")

	fwGroup := vnet.Cluster("Firewall & Routing", diagram.GroupClusterAttrs(p.color(TierFirewall)))
	azfw := fwGroup.Node(diagram.KindFirewall, "azfw-contoso\n(Azure Firewall)")
	fwGroup.Node(diagram.KindRouteTable, "Route Table\n(Default to FW)")

	monitoring := d.Cluster("Monitoring", diagram.GroupClusterAttrs(p.color(TierMonitoring)))
	law := monitoring.Node(diagram.KindLogAnalytics, "law-contoso-prod\n(Log Analytics)")
	appi := monitoring.Node(diagram.KindAppInsights, "appi-contoso\n(App Insights)")

	// User traffic flow
	d.Connect(users, afd, diagram.EdgeStyle{Label: "HTTPS"})
	d.Connect(afd, agw, diagram.EdgeStyle{Label: "HTTPS"})
	d.Connect(agw, webapp, diagram.EdgeStyle{Label: "HTTPS"})

	// Web app to backend
	d.Connect(webapp, backendAPI, diagram.EdgeStyle{Label: "API"})

	// Backend to data tier
	d.Connect(backendAPI, sqlDB, diagram.EdgeStyle{Label: "SQL\n(Private)"})
	d.Connect(backendAPI, storage, diagram.EdgeStyle{Label: "Storage\n(Private)"})

	// Function app flows
	d.Connect(funcApp, serviceBus, diagram.EdgeStyle{Label: "Message"})
	d.Connect(serviceBus, funcApp, diagram.EdgeStyle{Label: "Process"})
	d.Connect(funcApp, sqlDB, diagram.EdgeStyle{Label: "SQL\n(Private)"})

	// Key Vault connections
	d.Connect(webapp, keyvault, diagram.EdgeStyle{Label: "Secrets", Style: "dotted"})
	d.Connect(backendAPI, keyvault, diagram.EdgeStyle{Label: "Secrets", Style: "dotted"})
	d.Connect(funcApp, keyvault, diagram.EdgeStyle{Label: "Secrets", Style: "dotted"})

	d.Connect(sqlServer, sqlDB, diagram.EdgeStyle{Label: "hosts"})

	// Firewall routing
	d.Connect(webapp, azfw, diagram.EdgeStyle{Label: "Outbound", Style: "dashed"})
	d.Connect(backendAPI, azfw, diagram.EdgeStyle{Label: "Outbound", Style: "dashed"})
	d.Connect(funcApp, azfw, diagram.EdgeStyle{Label: "Outbound", Style: "dashed"})

	// Monitoring connections
	for _, src := range []*diagram.Node{webapp, backendAPI, funcApp, sqlDB, storage} {
		d.Connect(src, law, diagram.EdgeStyle{Label: "Logs", Style: "dotted", Color: "green"})
	}
	for _, src := range []*diagram.Node{webapp, backendAPI, funcApp} {
		d.Connect(src, appi, diagram.EdgeStyle{Label: "Telemetry", Style: "dotted", Color: "green"})
	}

	return d
}
