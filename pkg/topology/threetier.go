package topology

import "github.com/utkloud/archdiagrams/pkg/diagram"

// ThreeTier builds the IIS + SQL Server 3-tier demo architecture:
// a load-balanced pair of IIS web servers in an availability set on the
// frontend subnet, and a SQL Server 2022 VM on the database subnet, all
// inside one virtual network.
func ThreeTier(p Palette) *diagram.Diagram {
	d := diagram.New("IIS + SQL Server 3-Tier Architecture (Bicep Demo)", "bicep_iis_sql_3tier")

	users := d.Node(diagram.KindUsers, "Internet Users")
	webPublicIP := d.Node(diagram.KindPublicIP, "cust1websrvpip\n(Web LB Public IP)\nDNS: cust1websrvlb")

	vnet := d.Cluster("cust1Vnet\n(10.0.0.0/16)", diagram.VNetClusterAttrs())

	lbGroup := vnet.Cluster("Load Balancer", diagram.GroupClusterAttrs(p.color(TierBackend)))
	webLB := lbGroup.Node(diagram.KindLoadBalancer, "cust1webSrvlb\n(Load Balancer)\nPort 80")

	frontend := vnet.Cluster("FESubnetName\n(10.0.0.0/24)", diagram.SubnetClusterAttrs(p.color(TierFrontend)))
	nsgFrontend := frontend.Node(diagram.KindNSG, "feNsg\n(Allow HTTP 80)")

	avsetGroup := frontend.Cluster("Availability Set", diagram.GroupClusterAttrs(p.color(TierMonitoring)))
	avset := avsetGroup.Node(diagram.KindAvailabilitySet, "cust1webSrvAS\n(2 Fault/20 Update Domains)")
	webVM1 := avsetGroup.Node(diagram.KindVM, "cust1webSrv0\nWindows Server 2022\nIIS Web Server\nD2s_v3")
	webVM2 := avsetGroup.Node(diagram.KindVM, "cust1webSrv1\nWindows Server 2022\nIIS Web Server\nD2s_v3")
	webNIC1 := avsetGroup.Node(diagram.KindNIC, "NIC0")
	webNIC2 := avsetGroup.Node(diagram.KindNIC, "NIC1")

	database := vnet.Cluster("DBSubnetName\n(10.0.2.0/24)", diagram.SubnetClusterAttrs(p.color(TierData)))
	nsgDB := database.Node(diagram.KindNSG, "dbNsg\n(Allow SQL 1433)\n(Block Internet)")
	sqlVM := database.Node(diagram.KindVM, "cust1sqlSrv14\nSQL Server 2022\nStandard Edition\nD4s_v3")
	sqlNIC := database.Node(diagram.KindNIC, "sqlSrvNIC")
	sqlPublicIP := database.Node(diagram.KindPublicIP, "SqlPIP\n(Management)")

	// User to web tier
	d.Connect(users, webPublicIP, diagram.EdgeStyle{Label: "HTTPS/HTTP", Color: "blue"})
	d.Connect(webPublicIP, webLB, diagram.EdgeStyle{Color: "blue"})

	// Load balancer to web servers
	d.Connect(webLB, webNIC1, diagram.EdgeStyle{Label: "Port 80\n(Backend Pool)", Color: "blue"})
	d.Connect(webLB, webNIC2, diagram.EdgeStyle{Label: "Port 80\n(Backend Pool)", Color: "blue"})

	// NICs to VMs
	d.Connect(webNIC1, webVM1, diagram.EdgeStyle{Color: "darkblue"})
	d.Connect(webNIC2, webVM2, diagram.EdgeStyle{Color: "darkblue"})

	// Availability set membership
	d.Connect(webVM1, avset, diagram.EdgeStyle{Label: "Member", Style: "dotted", Color: "green"})
	d.Connect(webVM2, avset, diagram.EdgeStyle{Label: "Member", Style: "dotted", Color: "green"})

	// Web servers to SQL Server
	d.Connect(webVM1, sqlVM, diagram.EdgeStyle{Label: "SQL:1433", Color: "orange"})
	d.Connect(webVM2, sqlVM, diagram.EdgeStyle{Label: "SQL:1433", Color: "orange"})

	d.Connect(sqlNIC, sqlVM, diagram.EdgeStyle{Color: "darkorange"})
	d.Connect(sqlPublicIP, sqlNIC, diagram.EdgeStyle{Label: "RDP/Management", Style: "dashed", Color: "gray"})

	// NSG associations
	d.Connect(nsgFrontend, webNIC1, diagram.EdgeStyle{Label: "Protects", Style: "dotted", Color: "red"})
	d.Connect(nsgDB, sqlNIC, diagram.EdgeStyle{Label: "Protects", Style: "dotted", Color: "red"})

	return d
}
