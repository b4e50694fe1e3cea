package dictionary

// DefaultXML is the bundled base dictionary: RFC 6733 base-protocol AVPs
// plus the 3GPP charging AVPs exercised by Gx/Gy/Sy-style Credit-Control
// applications. Applications extend it by passing additional XML sources
// into New alongside this constant, or by merging YAML sources into the
// result with MergeYAML.
const DefaultXML = `<?xml version="1.0" encoding="UTF-8"?>
<diameter>
  <application id="0" name="Common">
    <avp name="Session-Id" code="263" must="M">
      <data type="UTF8String"/>
    </avp>
    <avp name="Origin-Host" code="264" must="M">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Origin-Realm" code="296" must="M">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Destination-Host" code="293" must="M">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Destination-Realm" code="283" must="M">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Host-IP-Address" code="257" must="M">
      <data type="Address"/>
    </avp>
    <avp name="Vendor-Id" code="266" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Product-Name" code="269">
      <data type="UTF8String"/>
    </avp>
    <avp name="Origin-State-Id" code="278">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Supported-Vendor-Id" code="265">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Auth-Application-Id" code="258" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Acct-Application-Id" code="259" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Result-Code" code="268" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Experimental-Result" code="297" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Experimental-Result-Code" code="298" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Error-Message" code="281">
      <data type="UTF8String"/>
    </avp>
    <avp name="Error-Reporting-Host" code="294">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Failed-AVP" code="279" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Disconnect-Cause" code="273" must="M">
      <data type="Enumerated"/>
    </avp>
    <avp name="Inband-Security-Id" code="299">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Firmware-Revision" code="267">
      <data type="Unsigned32"/>
    </avp>
    <avp name="Redirect-Host" code="292">
      <data type="DiameterURI"/>
    </avp>
    <avp name="Proxy-Host" code="280" must="M">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Proxy-State" code="33" must="M">
      <data type="OctetString"/>
    </avp>
    <avp name="Proxy-Info" code="284" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Route-Record" code="282">
      <data type="DiameterIdentity"/>
    </avp>
    <avp name="Event-Timestamp" code="55">
      <data type="Time"/>
    </avp>
    <avp name="User-Name" code="1" must="M">
      <data type="UTF8String"/>
    </avp>
    <avp name="Called-Station-Id" code="30">
      <data type="UTF8String"/>
    </avp>
    <avp name="Calling-Station-Id" code="31">
      <data type="UTF8String"/>
    </avp>
  </application>
  <application id="4" name="Credit-Control">
    <avp name="CC-Request-Type" code="416" must="M">
      <data type="Enumerated"/>
    </avp>
    <avp name="CC-Request-Number" code="415" must="M">
      <data type="Unsigned32"/>
    </avp>
    <avp name="CC-Session-Failover" code="418">
      <data type="Enumerated"/>
    </avp>
    <avp name="CC-Total-Octets" code="421">
      <data type="Unsigned64"/>
    </avp>
    <avp name="Granted-Service-Unit" code="431" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Requested-Service-Unit" code="437" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Used-Service-Unit" code="446" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="CC-Time" code="420">
      <data type="Unsigned32"/>
    </avp>
    <avp name="CC-Money" code="413">
      <data type="Grouped"/>
    </avp>
    <avp name="Unit-Value" code="445" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Value-Digits" code="447" must="M">
      <data type="Integer64"/>
    </avp>
    <avp name="Exponent" code="429">
      <data type="Integer32"/>
    </avp>
    <avp name="Multiple-Services-Indicator" code="455">
      <data type="Enumerated"/>
    </avp>
    <avp name="Multiple-Services-Credit-Control" code="456">
      <data type="Grouped"/>
    </avp>
    <avp name="Subscription-Id" code="443" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Subscription-Id-Type" code="450" must="M">
      <data type="Enumerated"/>
    </avp>
    <avp name="Subscription-Id-Data" code="444" must="M">
      <data type="UTF8String"/>
    </avp>
  </application>
  <application id="16777238" name="Gx">
    <avp name="Service-Information" code="873" vendor-id="10415" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="PS-Information" code="874" vendor-id="10415" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="3GPP-Charging-Id" code="2" vendor-id="10415">
      <data type="OctetString"/>
    </avp>
    <avp name="SGSN-Address" code="6" vendor-id="10415">
      <data type="Address"/>
    </avp>
    <avp name="GGSN-Address" code="7" vendor-id="10415">
      <data type="Address"/>
    </avp>
    <avp name="Called-Station-Id" code="30" vendor-id="10415">
      <data type="UTF8String"/>
    </avp>
    <avp name="Charging-Rule-Install" code="1001" vendor-id="10415" must="M">
      <data type="Grouped"/>
    </avp>
    <avp name="Charging-Rule-Name" code="1005" vendor-id="10415" must="M">
      <data type="OctetString"/>
    </avp>
  </application>
</diameter>
`
